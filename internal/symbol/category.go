package symbol

import "fmt"

// Category is the grammatical class of a vocabulary symbol. Vocabulary
// categories use the single-letter codes of .vct files.
type Category byte

const (
	// Special marks built-in punctuation; it never appears in .vct files.
	Special      Category = 0
	Structure    Category = 'G'
	LeftBracket  Category = 'K'
	RightBracket Category = 'L'
	Mode         Category = 'M'
	Functor      Category = 'O'
	Predicate    Category = 'R'
	Selector     Category = 'U'
	Attribute    Category = 'V'
)

// ParseCategory maps a .vct category letter to a Category.
func ParseCategory(b byte) (Category, error) {
	switch c := Category(b); c {
	case Structure, LeftBracket, RightBracket, Mode, Functor, Predicate, Selector, Attribute:
		return c, nil
	}
	return Special, fmt.Errorf("unknown symbol category %q", b)
}

// Letter returns the .vct letter, or 0 for Special.
func (c Category) Letter() byte {
	return byte(c)
}

func (c Category) String() string {
	switch c {
	case Special:
		return "special"
	case Structure:
		return "structure"
	case LeftBracket:
		return "left-bracket"
	case RightBracket:
		return "right-bracket"
	case Mode:
		return "mode"
	case Functor:
		return "functor"
	case Predicate:
		return "predicate"
	case Selector:
		return "selector"
	case Attribute:
		return "attribute"
	}
	return fmt.Sprintf("category(%d)", byte(c))
}
