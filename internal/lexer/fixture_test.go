package lexer

import (
	"testing"

	"mizlex/internal/symbol"
)

func functor(text string, prio int) symbol.Entry {
	return symbol.Entry{Text: text, Category: symbol.Functor, Priority: prio, HasPriority: true}
}

// testTable is a small vocabulary covering the symbols used in these tests.
func testTable(t *testing.T) *symbol.Table {
	t.Helper()
	src := symbol.Articles{
		{Name: "TEST_1", Symbols: []symbol.Entry{
			functor(".", 100),
			functor("..", 100),
			functor("||", 100),
			{Text: "||..", Category: symbol.LeftBracket},
			{Text: "abs", Category: symbol.Functor},
			{Text: "*", Category: symbol.Functor},
			functor("sup", 200),
		}},
		{Name: "TEST_2", Symbols: []symbol.Entry{
			{Text: "Noetherian", Category: symbol.Attribute},
			{Text: "sup-Semilattice", Category: symbol.Mode},
			{Text: "Ideal", Category: symbol.Mode},
			{Text: "Group", Category: symbol.Mode},
			{Text: "ex_sup_of", Category: symbol.Predicate},
			{Text: "in", Category: symbol.Predicate},
		}},
	}
	tbl := symbol.NewTable()
	if err := tbl.Load([]symbol.Source{src}, nil); err != nil {
		t.Fatalf("load test vocabulary: %v", err)
	}
	tbl.BuildLengthIndex()
	return tbl
}
