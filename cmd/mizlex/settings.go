package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mizlex/internal/driver"
	"mizlex/internal/observ"
	"mizlex/internal/symbol"
)

const cacheApp = "mizlex"

// settings are the persistent flags merged over mizlex.toml.
type settings struct {
	vocab          string
	articles       []string
	cacheEnabled   bool
	cacheDir       string
	maxDiagnostics int
	color          bool
	timings        bool
	manifest       string // путь к mizlex.toml, если найден
}

func readSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()
	s := settings{cacheEnabled: true}

	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return s, err
	}
	if found {
		s.manifest = manifest.Path
		s.vocab = manifest.vocabularyPath()
		s.articles = manifest.Config.Vocabulary.Articles
		s.cacheDir = manifest.cacheDir()
		if manifest.Config.Cache.Enabled != nil {
			s.cacheEnabled = *manifest.Config.Cache.Enabled
		}
	}

	if flags.Changed("vct") || s.vocab == "" {
		if s.vocab, err = flags.GetString("vct"); err != nil {
			return s, fmt.Errorf("failed to get vct flag: %w", err)
		}
	}
	if flags.Changed("article") {
		if s.articles, err = flags.GetStringSlice("article"); err != nil {
			return s, fmt.Errorf("failed to get article flag: %w", err)
		}
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return s, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if noCache {
		s.cacheEnabled = false
	}
	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	if s.color, err = readColorMode(colorFlag, os.Stderr); err != nil {
		return s, err
	}
	return s, nil
}

// loadTable loads the vocabulary named by the settings.
func loadTable(cmd *cobra.Command, s settings, timer *observ.Timer) (*symbol.Table, driver.VocabStats, error) {
	if s.vocab == "" {
		return nil, driver.VocabStats{}, fmt.Errorf("no vocabulary file: pass --vct or set [vocabulary].path in %s", manifestName)
	}
	var cache *driver.VocabCache
	if s.cacheEnabled {
		var err error
		cache, err = driver.OpenVocabCache(s.cacheDir, cacheApp)
		if err != nil {
			// без кэша тоже работаем
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: vocabulary cache disabled: %v\n", err)
			cache = nil
		}
	}
	return driver.LoadVocabulary(cmd.Context(), driver.VocabOptions{
		Path:     s.vocab,
		Articles: s.articles,
		Cache:    cache,
		Timer:    timer,
	})
}
