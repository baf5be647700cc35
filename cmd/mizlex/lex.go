package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mizlex/internal/diag"
	"mizlex/internal/diagfmt"
	"mizlex/internal/driver"
	"mizlex/internal/observ"
	"mizlex/internal/source"
	"mizlex/internal/symbol"
)

var lexCmd = &cobra.Command{
	Use:   "lex [flags] file.miz|dir",
	Short: "Rewrite the text proper of articles into tagged tokens",
	Long: `Lex strips comments, separates the environment from the text proper and
prints the text proper with every vocabulary symbol replaced by its tag.
Given a directory, every *.miz file below it is lexed in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	lexCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lexCmd.Flags().Bool("positions", false, "include the position map")
	lexCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	lexCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

// errHadDiagnostics makes the command exit non-zero after printing diagnostics.
var errHadDiagnostics = errors.New("lexing finished with errors")

type lexFlags struct {
	format    string
	positions bool
	jobs      int
	ui        uiMode
}

func readLexFlags(cmd *cobra.Command) (lexFlags, error) {
	var f lexFlags
	var err error
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "json":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.positions, err = cmd.Flags().GetBool("positions"); err != nil {
		return f, fmt.Errorf("failed to get positions flag: %w", err)
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	f.ui, err = readUIMode(uiFlag)
	return f, err
}

func runLex(cmd *cobra.Command, args []string) error {
	target := args[0]
	flags, err := readLexFlags(cmd)
	if err != nil {
		return err
	}
	s, err := readSettings(cmd)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	defer printTimings(cmd.ErrOrStderr(), s.timings, timer)

	table, _, err := loadTable(cmd, s, timer)
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return runLexDir(cmd, target, flags, s, timer, table)
	}

	result, err := driver.Tokenize(cmd.Context(), target, table, driver.TokenizeOptions{
		MaxDiagnostics: s.maxDiagnostics,
		Timer:          timer,
	})
	if err != nil {
		return fmt.Errorf("lexing failed: %w", err)
	}

	printDiagnostics(os.Stderr, result.Bag, result.FileSet, s.color)
	if result.Bag.HasErrors() {
		return errHadDiagnostics
	}

	out := cmd.OutOrStdout()
	if flags.format == "json" {
		return diagfmt.FormatLexJSON(out, []diagfmt.LexOutput{
			diagfmt.BuildLexOutput(result.File.Path, len(result.Document.Environment), result.Lex, flags.positions),
		})
	}
	return diagfmt.FormatLexPretty(out, result.Lex, diagfmt.TokenOpts{Color: s.color, Positions: flags.positions})
}

func runLexDir(cmd *cobra.Command, dir string, flags lexFlags, s settings, timer *observ.Timer, table *symbol.Table) error {
	files, err := driver.ListArticles(dir)
	if err != nil {
		return err
	}
	opts := driver.TokenizeOptions{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           flags.jobs,
	}

	idx := timer.Begin("lex-dir")
	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if shouldUseTUI(flags.ui) && len(files) > 0 {
		fileSet, results, err = runLexDirWithUI(cmd.Context(), "mizlex lex", dir, files, table, opts)
	} else {
		fileSet, results, err = driver.TokenizeFiles(cmd.Context(), dir, files, table, opts)
	}
	timer.End(idx, fmt.Sprintf("%d articles", len(files)))
	if err != nil {
		return err
	}

	failed := 0
	outputs := make([]diagfmt.LexOutput, 0, len(results))
	out := cmd.OutOrStdout()
	for _, r := range results {
		printDiagnostics(os.Stderr, r.Bag, fileSet, s.color)
		if r.Bag.HasErrors() {
			failed++
			continue
		}
		if flags.format == "json" {
			outputs = append(outputs, diagfmt.BuildLexOutput(r.Path, len(r.Document.Environment), r.Lex, flags.positions))
			continue
		}
		if err := writeArticleHeader(out, dir, r.Path); err != nil {
			return err
		}
		if err := diagfmt.FormatLexPretty(out, r.Lex, diagfmt.TokenOpts{Color: s.color, Positions: flags.positions}); err != nil {
			return err
		}
	}
	if flags.format == "json" {
		if err := diagfmt.FormatLexJSON(out, outputs); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed: %w", failed, len(results), errHadDiagnostics)
	}
	return nil
}

func writeArticleHeader(w io.Writer, dir, path string) error {
	name := path
	if rel, err := filepath.Rel(dir, path); err == nil {
		name = rel
	}
	_, err := fmt.Fprintf(w, "== %s ==\n", name)
	return err
}

func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, useColor bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   1,
		PathMode:  diagfmt.PathModeRelative,
		ShowNotes: true,
	})
}
