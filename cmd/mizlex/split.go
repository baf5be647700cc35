package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mizlex/internal/diag"
	"mizlex/internal/lexer"
	"mizlex/internal/source"
)

var splitCmd = &cobra.Command{
	Use:   "split [flags] file.miz",
	Short: "Show where the environment ends and the text proper begins",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

var stripCmd = &cobra.Command{
	Use:   "strip file.miz",
	Short: "Print an article with its comments removed",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrip,
}

func init() {
	splitCmd.Flags().String("region", "", "print the lines of one region (env|text)")
	splitCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type splitPayload struct {
	File             string `json:"file"`
	EnvironmentLines int    `json:"environment_lines"`
	TextProperLines  int    `json:"text_proper_lines"`
	BeginLine        int    `json:"begin_line"`
}

// loadArticle reads path into a fresh FileSet.
func loadArticle(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load file: %w", err)
	}
	return fs, fs.Get(id), nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	region, err := cmd.Flags().GetString("region")
	if err != nil {
		return fmt.Errorf("failed to get region flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	s, err := readSettings(cmd)
	if err != nil {
		return err
	}

	fs, file, err := loadArticle(args[0])
	if err != nil {
		return err
	}
	lines := file.Lines()
	doc, err := lexer.SeparateEnvironmentAndTextProper(lexer.RemoveComment(lines))
	if err != nil {
		bag := diag.NewBag(1)
		bag.Add(diag.FromError(err, source.Span{File: file.ID}))
		printDiagnostics(cmd.ErrOrStderr(), bag, fs, s.color)
		return errHadDiagnostics
	}

	envLen := len(doc.Environment)
	out := cmd.OutOrStdout()
	switch region {
	case "env", "environment":
		return writeLines(out, lines[:envLen])
	case "text", "text-proper":
		return writeLines(out, lines[envLen:])
	case "":
	default:
		return fmt.Errorf("invalid --region value %q (expected env|text)", region)
	}

	payload := splitPayload{
		File:             file.Path,
		EnvironmentLines: envLen,
		TextProperLines:  len(doc.TextProper),
		BeginLine:        envLen + 1,
	}
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		_, err = fmt.Fprintf(out, "%s\n  environment: lines 1-%d (%d)\n  text proper: lines %d-%d (%d)\n",
			payload.File, envLen, envLen, payload.BeginLine, len(lines), payload.TextProperLines)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runStrip(cmd *cobra.Command, args []string) error {
	_, file, err := loadArticle(args[0])
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), lexer.RemoveComment(file.Lines()))
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
