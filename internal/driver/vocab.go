package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"mizlex/internal/observ"
	"mizlex/internal/symbol"
	"mizlex/internal/trace"
	"mizlex/internal/vct"
)

// VocabOptions controls LoadVocabulary.
type VocabOptions struct {
	Path     string
	Articles []string    // nil: all articles
	Cache    *VocabCache // nil disables caching
	Timer    *observ.Timer
}

// VocabStats summarizes a loaded vocabulary.
type VocabStats struct {
	Articles int // sections in the file
	Symbols  int // entries in the table, specials included
	CacheHit bool
}

// LoadVocabulary decodes the vocabulary file, loads the requested articles
// into a fresh table and builds its length index.
func LoadVocabulary(ctx context.Context, opts VocabOptions) (*symbol.Table, VocabStats, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "load-vocabulary")
	idx := opts.Timer.Begin("load-vocabulary")

	table, stats, err := loadVocabulary(ctx, opts)

	note := fmt.Sprintf("%d symbols", stats.Symbols)
	if stats.CacheHit {
		note += ", cached"
	}
	if err != nil {
		note = err.Error()
	}
	opts.Timer.End(idx, note)
	span.WithExtra("path", opts.Path).
		WithExtra("symbols", strconv.Itoa(stats.Symbols)).
		WithExtra("cache_hit", strconv.FormatBool(stats.CacheHit)).
		End(note)
	return table, stats, err
}

func loadVocabulary(ctx context.Context, opts VocabOptions) (*symbol.Table, VocabStats, error) {
	var stats VocabStats
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, stats, fmt.Errorf("read vocabulary: %w", err)
	}

	key := KeyFor(content)
	var voc *vct.Vocabulary
	payload, ok, err := opts.Cache.Get(key)
	switch {
	case err != nil:
		cacheFailure(ctx, "vocab-cache-get", err)
	case ok:
		voc = payload.Vocab
		stats.CacheHit = true
	}
	if voc == nil {
		voc, err = vct.Decode(bytes.NewReader(content), opts.Path)
		if err != nil {
			return nil, stats, err
		}
		// Кэш best effort, ошибка записи не мешает лексированию.
		if err := opts.Cache.Put(key, &VocabPayload{Source: opts.Path, Vocab: voc}); err != nil {
			cacheFailure(ctx, "vocab-cache-put", err)
		}
	}
	stats.Articles = len(voc.Sections)

	table := symbol.NewTable()
	if err := table.Load([]symbol.Source{voc}, opts.Articles); err != nil {
		return nil, stats, err
	}
	table.BuildLengthIndex()
	stats.Symbols = table.Len()
	return table, stats, nil
}

// cacheFailure оставляет след в трассе вместо ошибки: битый кэш просто пересобирается.
func cacheFailure(ctx context.Context, name string, err error) {
	trace.Point(trace.FromContext(ctx), trace.ScopePass, name, err.Error(), trace.ParentFromContext(ctx))
}
