package diag

import (
	"mizlex/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Coded is implemented by domain errors that know their diagnostic code.
type Coded interface {
	error
	DiagCode() Code
}
