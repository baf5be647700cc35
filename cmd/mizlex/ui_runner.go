package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mizlex/internal/driver"
	"mizlex/internal/source"
	"mizlex/internal/symbol"
	"mizlex/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runLexDirWithUI lexes files while a Bubble Tea program shows progress on stderr.
func runLexDirWithUI(ctx context.Context, title, baseDir string, files []string, table *symbol.Table, opts driver.TokenizeOptions) (*source.FileSet, []driver.TokenizeDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeFiles(ctx, baseDir, files, table, optsCopy)
		outcomeCh <- dirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// После выхода из UI (в т.ч. по ctrl+c) воркеры не должны застрять на полном канале.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
