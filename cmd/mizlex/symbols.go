package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"mizlex/internal/observ"
	"mizlex/internal/symbol"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags]",
	Short: "Load the vocabulary and summarize the symbol table",
	Args:  cobra.NoArgs,
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().Bool("list", false, "print every symbol with its tag")
}

func runSymbols(cmd *cobra.Command, _ []string) error {
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}
	s, err := readSettings(cmd)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	defer printTimings(cmd.ErrOrStderr(), s.timings, timer)

	table, stats, err := loadTable(cmd, s, timer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if list {
		return writeSymbolList(out, table)
	}

	cached := ""
	if stats.CacheHit {
		cached = " (cached)"
	}
	fmt.Fprintf(out, "%s: %d articles, %d symbols%s\n", s.vocab, stats.Articles, stats.Symbols, cached)
	writeCategoryCounts(out, table.Stats())
	lengths := make([]string, 0, len(table.Lengths()))
	for _, n := range table.Lengths() {
		lengths = append(lengths, fmt.Sprint(n))
	}
	_, err = fmt.Fprintf(out, "  lengths: %s\n", strings.Join(lengths, " "))
	return err
}

func writeCategoryCounts(w io.Writer, counts map[symbol.Category]int) {
	cats := make([]symbol.Category, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, c := range cats {
		fmt.Fprintf(w, "  %-14s %d\n", c.String(), counts[c])
	}
}

func writeSymbolList(w io.Writer, table *symbol.Table) error {
	for _, e := range table.Entries() {
		file := e.File
		if file == "" {
			file = "-"
		}
		if _, err := fmt.Fprintf(w, "%-30s %-12s %s\n", e.Text, file, e.Tag()); err != nil {
			return err
		}
	}
	return nil
}
