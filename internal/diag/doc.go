// Package diag defines the diagnostic model shared by the vocabulary loader,
// the document splitter and the lexer.
//
// Producers either return typed errors carrying a Code, which the driver
// converts with FromError, or emit through a Reporter. BagReporter collects
// diagnostics into a Bag; rendering lives in internal/diagfmt.
//
// Codes are grouped by range:
//
//   - 1000..1099 LEX: token cutting (unrecognized characters, unknown vocabulary sources)
//   - 1100..1199 DOC: document structure (missing 'begin')
//   - 1200..1299 VCT: vocabulary file syntax
//   - 4000..4999 IO : file system failures
package diag
