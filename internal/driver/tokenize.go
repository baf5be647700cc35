package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mizlex/internal/diag"
	"mizlex/internal/lexer"
	"mizlex/internal/observ"
	"mizlex/internal/source"
	"mizlex/internal/symbol"
	"mizlex/internal/trace"
)

// TokenizeOptions controls Tokenize and TokenizeDir.
type TokenizeOptions struct {
	MaxDiagnostics int
	Jobs           int           // TokenizeDir only; <= 0 means GOMAXPROCS
	Timer          *observ.Timer // Tokenize only; per-phase timings
	Progress       ProgressSink  // может быть nil
}

// TokenizeResult is one lexed article.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Document lexer.Document
	Lex      lexer.Result
	Bag      *diag.Bag
}

// Tokenize loads path and runs it through strip, split and lex.
// Only I/O failures are returned as errors; lexical and structural problems
// end up in the result's Bag.
func Tokenize(ctx context.Context, path string, table *symbol.Table, opts TokenizeOptions) (*TokenizeResult, error) {
	fs := source.NewFileSet()

	idx := opts.Timer.Begin(string(StageRead))
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	doc, res := tokenizeFile(ctx, file, table, bag, opts)
	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Document: doc,
		Lex:      res,
		Bag:      bag,
	}, nil
}

// tokenizeFile runs strip, split and lex over an already loaded file.
func tokenizeFile(ctx context.Context, file *source.File, table *symbol.Table, bag *diag.Bag, opts TokenizeOptions) (lexer.Document, lexer.Result) {
	path := file.Path
	ctx, span := trace.Start(ctx, trace.ScopeArticle, "article:"+source.BaseName(path))
	defer span.End("")

	phase := func(stage Stage, fn func() error) error {
		_, sp := trace.Start(ctx, trace.ScopePass, string(stage))
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
		start := time.Now()
		err := opts.Timer.Measure(string(stage), fn)
		if err != nil {
			sp.End(err.Error())
			emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(start)})
			return err
		}
		sp.End("")
		return nil
	}

	var stripped []string
	_ = phase(StageStrip, func() error {
		stripped = lexer.RemoveComment(file.Lines())
		return nil
	})

	var doc lexer.Document
	err := phase(StageSplit, func() error {
		var err error
		doc, err = lexer.SeparateEnvironmentAndTextProper(stripped)
		return err
	})
	if err != nil {
		d := diag.FromError(err, source.Span{File: file.ID})
		end := file.LineStart(uint32(len(stripped)) + 1) // #nosec G115 -- line count fits uint32
		bag.Add(d.WithNote(source.Span{File: file.ID, Start: end, End: end}, "articles must contain a line starting with 'begin'"))
		return lexer.Document{}, lexer.Result{}
	}

	var res lexer.Result
	start := time.Now()
	err = phase(StageLex, func() error {
		lx := lexer.New(table, lexer.Options{
			Reporter: &lexer.ReporterAdapter{File: file, Bag: bag},
		})
		var err error
		res, err = lx.LexText(doc)
		return err
	})
	if err != nil {
		// *lexer.Error уже ушла в bag через ReporterAdapter.
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			bag.Add(diag.FromError(err, source.Span{File: file.ID}))
		}
		return doc, lexer.Result{}
	}
	emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusDone, Elapsed: time.Since(start)})
	span.WithExtra("tokens", fmt.Sprint(len(res.Tokens)))
	return doc, res
}
