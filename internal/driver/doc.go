// Package driver wires the lexer pipeline together: it loads the vocabulary
// into a symbol table (through an on-disk cache), reads articles into a
// source.FileSet, strips comments, splits off the environment and lexes the
// text proper, collecting diagnostics into a diag.Bag per article.
package driver
