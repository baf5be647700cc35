package token

// Kind represents the cutter that produced a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Symbol is a vocabulary symbol, including special punctuation.
	Symbol
	// Reserved is a language keyword.
	Reserved
	// Ident is an identifier.
	Ident
	// Numeral is a decimal numeral without leading zeros.
	Numeral
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "Symbol"
	case Reserved:
		return "Reserved"
	case Ident:
		return "Ident"
	case Numeral:
		return "Numeral"
	default:
		return "Invalid"
	}
}
