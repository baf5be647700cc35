// Package fuzztests houses Go fuzz harnesses for the article pipeline
// (source -> comment strip -> split -> lexer). They guard against panics and
// check the position map on arbitrary inputs.
//
// Запуск: go test ./internal/fuzz -fuzz=FuzzLexDocument
package fuzztests
