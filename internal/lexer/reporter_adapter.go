package lexer

import (
	"mizlex/internal/diag"
	"mizlex/internal/source"
)

// ReporterAdapter переводит позиции лексера в Span файла и пишет в diag.Bag.
type ReporterAdapter struct {
	File *source.File
	Bag  *diag.Bag
}

func (r *ReporterAdapter) Report(code diag.Code, pos source.LineCol, length uint32, msg string) {
	if r == nil || r.Bag == nil {
		return
	}
	var sp source.Span
	if r.File != nil {
		sp = r.File.SpanAt(pos, length)
	}
	diag.NewReportBuilder(diag.BagReporter{Bag: r.Bag}, diag.SeverityFor(code), code, sp, msg).Emit()
}
