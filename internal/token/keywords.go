package token

import (
	"cmp"
	"slices"
)

var reserved = map[string]struct{}{
	"according": {}, "aggregate": {}, "all": {}, "and": {}, "antonym": {},
	"are": {}, "as": {}, "associativity": {}, "assume": {}, "asymmetry": {},
	"attr": {}, "be": {}, "begin": {}, "being": {}, "by": {},
	"canceled": {}, "case": {}, "cases": {}, "cluster": {}, "coherence": {},
	"commutativity": {}, "compatibility": {}, "connectedness": {}, "consider": {}, "consistency": {},
	"constructors": {}, "contradiction": {}, "correctness": {}, "def": {}, "deffunc": {},
	"define": {}, "definition": {}, "definitions": {}, "defpred": {}, "do": {},
	"does": {}, "end": {}, "environ": {}, "equals": {}, "ex": {},
	"exactly": {}, "existence": {}, "for": {}, "from": {}, "func": {},
	"given": {}, "hence": {}, "hereby": {}, "holds": {}, "idempotence": {},
	"identify": {}, "if": {}, "iff": {}, "implies": {}, "involutiveness": {},
	"irreflexivity": {}, "is": {}, "it": {}, "let": {}, "means": {},
	"mode": {}, "non": {}, "not": {}, "notation": {}, "notations": {},
	"now": {}, "of": {}, "or": {}, "otherwise": {}, "over": {},
	"per": {}, "pred": {}, "prefix": {}, "projectivity": {}, "proof": {},
	"provided": {}, "qua": {}, "reconsider": {}, "reduce": {}, "reducibility": {},
	"redefine": {}, "reflexivity": {}, "registration": {}, "registrations": {}, "requirements": {},
	"reserve": {}, "sch": {}, "scheme": {}, "schemes": {}, "section": {},
	"selector": {}, "set": {}, "sethood": {}, "st": {}, "struct": {},
	"such": {}, "suppose": {}, "symmetry": {}, "synonym": {}, "take": {},
	"that": {}, "the": {}, "then": {}, "theorem": {}, "theorems": {},
	"thesis": {}, "thus": {}, "to": {}, "transitivity": {}, "uniqueness": {},
	"vocabularies": {}, "when": {}, "where": {}, "with": {}, "wrt": {},
}

// longest first, ties alphabetical
var reservedByLen = func() []string {
	words := make([]string, 0, len(reserved))
	for w := range reserved {
		words = append(words, w)
	}
	slices.SortFunc(words, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return words
}()

// Begin is the reserved word that opens the text proper.
const Begin = "begin"

// IsReserved reports whether word is a language keyword. Case-sensitive.
func IsReserved(word string) bool {
	_, ok := reserved[word]
	return ok
}

// ReservedWords returns the keywords ordered longest first.
// The returned slice is shared and must not be modified.
func ReservedWords() []string {
	return reservedByLen
}
