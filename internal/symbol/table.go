package symbol

import (
	"fmt"
	"slices"
	"strings"

	"mizlex/internal/diag"
)

// Table is the symbol dictionary plus its length index.
type Table struct {
	entries map[string]Entry
	byLen   map[int]map[string]struct{}
	lengths []int // descending
}

// NewTable returns an empty table holding only the special catalog.
func NewTable() *Table {
	t := &Table{}
	t.entries = withSpecials(make(map[string]Entry, len(specialSymbols)))
	return t
}

// LoadError reports vocabulary articles that were requested but not found.
type LoadError struct {
	Missing []string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unknown vocabulary source(s): %s", strings.Join(e.Missing, ", "))
}

// DiagCode implements diag.Coded.
func (e *LoadError) DiagCode() diag.Code {
	return diag.LexUnknownSymbolSource
}

// Load replaces the table contents with the symbols of the given sources.
// A nil restrict loads every article; otherwise only the named articles are
// loaded and each name must exist in some source. On error the table is left
// untouched. The length index is invalidated and must be rebuilt with
// BuildLengthIndex.
func (t *Table) Load(sources []Source, restrict []string) error {
	var allow map[string]bool
	if restrict != nil {
		allow = make(map[string]bool, len(restrict))
		for _, name := range restrict {
			allow[name] = false
		}
	}

	entries := make(map[string]Entry)
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, art := range src.Articles() {
			if allow != nil {
				if _, ok := allow[art.Name]; !ok {
					continue
				}
				allow[art.Name] = true
			}
			for _, e := range art.Symbols {
				if e.File == "" {
					e.File = art.Name
				}
				entries[e.Text] = e
			}
		}
	}

	var missing []string
	for name, seen := range allow {
		if !seen {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return &LoadError{Missing: missing}
	}

	t.entries = withSpecials(entries)
	t.byLen = nil
	t.lengths = nil
	return nil
}

func withSpecials(entries map[string]Entry) map[string]Entry {
	for _, s := range specialSymbols {
		entries[s] = Entry{Text: s, Category: Special}
	}
	return entries
}

// BuildLengthIndex recomputes the length -> symbols index.
func (t *Table) BuildLengthIndex() {
	t.byLen = make(map[int]map[string]struct{})
	for text := range t.entries {
		bucket, ok := t.byLen[len(text)]
		if !ok {
			bucket = make(map[string]struct{})
			t.byLen[len(text)] = bucket
		}
		bucket[text] = struct{}{}
	}
	t.lengths = make([]int, 0, len(t.byLen))
	for n := range t.byLen {
		t.lengths = append(t.lengths, n)
	}
	slices.Sort(t.lengths)
	slices.Reverse(t.lengths)
}

// Indexed reports whether the length index reflects the current contents.
func (t *Table) Indexed() bool {
	return t.byLen != nil
}

// Lengths returns the distinct symbol lengths, longest first.
func (t *Table) Lengths() []int {
	return slices.Clone(t.lengths)
}

// Lookup returns the entry for text.
func (t *Table) Lookup(text string) (Entry, bool) {
	e, ok := t.entries[text]
	return e, ok
}

// Len returns the number of symbols, specials included.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries sorted by text.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Text, b.Text) })
	return out
}

// LongestPrefix calls accept for every registered symbol that is a prefix
// of s, longest first, and returns the first entry accept agrees to.
func (t *Table) LongestPrefix(s string, accept func(Entry) bool) (Entry, bool) {
	for _, n := range t.lengths {
		if n > len(s) {
			continue
		}
		prefix := s[:n]
		if _, ok := t.byLen[n][prefix]; !ok {
			continue
		}
		e := t.entries[prefix]
		if accept == nil || accept(e) {
			return e, true
		}
	}
	return Entry{}, false
}

// Stats counts entries per category.
func (t *Table) Stats() map[Category]int {
	out := make(map[Category]int)
	for _, e := range t.entries {
		out[e.Category]++
	}
	return out
}
