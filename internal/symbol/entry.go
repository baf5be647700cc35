package symbol

import (
	"strconv"
	"strings"
)

// Entry describes one vocabulary symbol.
type Entry struct {
	Text     string   `msgpack:"text"`
	Category Category `msgpack:"cat"`
	// File is the article that declared the symbol; empty for Special.
	File string `msgpack:"file,omitempty"`
	// Priority is meaningful only when HasPriority is set (functors).
	Priority    int  `msgpack:"prio,omitempty"`
	HasPriority bool `msgpack:"has_prio,omitempty"`
}

// Tag renders the symbol for the output stream: special punctuation passes
// through unchanged, everything else becomes __<letter><priority>_<text>.
func (e Entry) Tag() string {
	if e.Category == Special {
		return e.Text
	}
	var sb strings.Builder
	sb.Grow(len(e.Text) + 8)
	sb.WriteString("__")
	sb.WriteByte(e.Category.Letter())
	if e.HasPriority {
		sb.WriteString(strconv.Itoa(e.Priority))
	}
	sb.WriteByte('_')
	sb.WriteString(e.Text)
	return sb.String()
}

// Article is the group of symbols declared by one vocabulary file section.
type Article struct {
	Name    string  `msgpack:"name"`
	Symbols []Entry `msgpack:"symbols"`
}

// Source provides decoded vocabulary articles to Table.Load.
type Source interface {
	Articles() []Article
}

// Articles is a Source backed by a plain slice.
type Articles []Article

func (a Articles) Articles() []Article { return a }
