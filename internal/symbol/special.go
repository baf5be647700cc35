package symbol

// specialSymbols is always present in a loaded table.
var specialSymbols = []string{
	",", ";", ":", "(", ")", "[", "]", "{", "}", "=", "&", "->", ".=", "...",
	"$1", "$2", "$3", "$4", "$5", "$6", "$7", "$8", "$9", "$10",
	"(#", "#)",
}

// SpecialSymbols returns a copy of the built-in punctuation catalog.
func SpecialSymbols() []string {
	return append([]string(nil), specialSymbols...)
}
