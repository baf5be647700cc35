package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"mizlex/internal/diag"
	"mizlex/internal/lexer"
	"mizlex/internal/source"
	"mizlex/internal/symbol"
	"mizlex/internal/trace"
)

// ArticleExt is the extension of article files picked up by TokenizeDir.
const ArticleExt = ".miz"

// TokenizeDirResult содержит результат лексирования одной статьи
type TokenizeDirResult struct {
	Path     string        // путь к файлу
	FileID   source.FileID // ID файла в FileSet
	Loaded   bool          // false, если файл не прочитался
	Document lexer.Document
	Lex      lexer.Result
	Bag      *diag.Bag // Диагностики
}

// ListArticles возвращает отсортированный список всех *.miz файлов в директории
func ListArticles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ArticleExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir лексирует все статьи в директории параллельно.
// Таблица символов неизменяема после BuildLengthIndex и разделяется воркерами.
func TokenizeDir(ctx context.Context, dir string, table *symbol.Table, opts TokenizeOptions) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListArticles(dir)
	if err != nil {
		return nil, nil, err
	}
	return TokenizeFiles(ctx, dir, files, table, opts)
}

// TokenizeFiles lexes the given articles in parallel. Results keep the order of files.
func TokenizeFiles(ctx context.Context, baseDir string, files []string, table *symbol.Table, opts TokenizeOptions) (*source.FileSet, []TokenizeDirResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "tokenize-dir")
	defer span.WithExtra("files", strconv.Itoa(len(files))).End("")

	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: грузим всё заранее.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	// Per-article timers would interleave; only the caller's total is timed.
	workerOpts := opts
	workerOpts.Timer = nil

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{File: source.NoFile}, "failed to load file: "+loadErr.Error()).Emit()
				emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusError, Err: loadErr})
				return nil
			}

			fileID := fileIDs[path]
			doc, res := tokenizeFile(gctx, fileSet.Get(fileID), table, bag, workerOpts)
			results[i] = TokenizeDirResult{
				Path:     path,
				FileID:   fileID,
				Loaded:   true,
				Document: doc,
				Lex:      res,
				Bag:      bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
