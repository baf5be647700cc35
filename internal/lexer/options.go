package lexer

import (
	"mizlex/internal/diag"
	"mizlex/internal/source"
)

// Reporter это тонкий интерфейс, чтобы не тянуть source.File в лексер.
// Лексер только сообщает позицию; в Span её переводит внешний слой.
type Reporter interface {
	Report(code diag.Code, pos source.LineCol, length uint32, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil
}

func (lx *Lexer) report(code diag.Code, pos source.LineCol, length uint32, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, pos, length, msg)
	}
}
