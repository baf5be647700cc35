package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"mizlex/internal/lexer"
)

// TokenOutput is one token in JSON output.
type TokenOutput struct {
	Kind string `json:"kind"`
	Raw  string `json:"raw"`
	Tag  string `json:"tag"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// PositionOutput is one position map entry in JSON output.
type PositionOutput struct {
	Index   int    `json:"index"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Len     uint32 `json:"len"`
	OutLine uint32 `json:"out_line"`
	OutCol  uint32 `json:"out_col"`
}

// LexOutput is the JSON document printed by `mizlex lex --format json`.
type LexOutput struct {
	File             string           `json:"file"`
	EnvironmentLines int              `json:"environment_lines"`
	Lines            []string         `json:"lines"`
	Tokens           []TokenOutput    `json:"tokens"`
	Positions        []PositionOutput `json:"positions,omitempty"`
}

// BuildLexOutput converts a lex result into its JSON shape.
func BuildLexOutput(path string, envLines int, res lexer.Result, positions bool) LexOutput {
	out := LexOutput{
		File:             path,
		EnvironmentLines: envLines,
		Lines:            res.Lines,
		Tokens:           make([]TokenOutput, len(res.Tokens)),
	}
	if out.Lines == nil {
		out.Lines = []string{}
	}
	for i, tok := range res.Tokens {
		out.Tokens[i] = TokenOutput{
			Kind: tok.Kind.String(),
			Raw:  tok.Raw,
			Tag:  tok.Tag,
			Line: tok.Line,
			Col:  tok.Col,
		}
	}
	if positions {
		out.Positions = make([]PositionOutput, len(res.Positions))
		for i, p := range res.Positions {
			out.Positions[i] = PositionOutput{
				Index:   p.Index,
				Line:    p.Line,
				Col:     p.Col,
				Len:     p.Len,
				OutLine: p.OutLine,
				OutCol:  p.OutCol,
			}
		}
	}
	return out
}

// FormatLexJSON выводит результат лексера в JSON формате
func FormatLexJSON(w io.Writer, out []LexOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatLexPretty печатает размеченные строки, одну на строку входа.
// С opts.Positions после каждой строки идёт карта позиций её токенов.
func FormatLexPretty(w io.Writer, res lexer.Result, opts TokenOpts) error {
	dim := color.New(color.Faint)
	if opts.Color {
		dim.EnableColor()
	} else {
		dim.DisableColor()
	}
	for i, line := range res.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if !opts.Positions {
			continue
		}
		for _, p := range res.Positions.Line(uint32(i + 1)) { // #nosec G115 -- line count fits uint32
			tok := res.Tokens[p.Index]
			if _, err := fmt.Fprintln(w, dim.Sprintf("  %d:%d+%d -> %d:%d %-9s %q",
				p.Line, p.Col, p.Len, p.OutLine, p.OutCol, tok.Kind, tok.Raw)); err != nil {
				return err
			}
		}
	}
	return nil
}
