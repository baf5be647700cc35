// Package symbol holds the vocabulary dictionary used by the lexer.
//
// A Table maps symbol text to its Entry and keeps a derived index from
// byte length to the symbols of that length. The index is rebuilt by
// BuildLengthIndex after every Load; until then the table matches nothing.
// After BuildLengthIndex the table is read-only and may be shared between
// goroutines without locking.
package symbol
