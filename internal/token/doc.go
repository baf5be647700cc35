// Package token defines the tokens emitted by the preprocessing lexer.
// Invariants:
//   - Token.Raw is the exact source text the token was cut from.
//   - Token.Tag equals Raw for reserved words, identifiers, numerals and
//     special punctuation; vocabulary symbols carry a __<category><priority>_ prefix.
//   - Line and Col are 1-based; Col counts bytes.
package token
