package diag

import (
	"errors"

	"mizlex/internal/source"
)

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// FromError converts err into a diagnostic at primary, with the code's
// default severity. Errors that do not implement Coded get UnknownCode.
func FromError(err error, primary source.Span) Diagnostic {
	code := UnknownCode
	var coded Coded
	if errors.As(err, &coded) {
		code = coded.DiagCode()
	}
	return New(SeverityFor(code), code, primary, err.Error())
}
