package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addArticleSeeds(f)
}

// addTestdataSeeds добавляет все *.miz из testdata пакетов.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "driver", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".miz" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addArticleSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"begin",
		"environ\nbegin\n",
		"environ :: begin\n begin x;\n",
		"begin\nreserve G for Abelian Group;\n",
		"begin\nx + y * 2 = 007;\n",
		"begin\n||.. x ..|| .= $1 (# a #)\n",
		"begin\nx_ y' z_1'' sup-Semilattice\n",
		"begin\né \t\r\n",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		return append([]byte(nil), src[:maxSeedBytes]...)
	}
	return src
}
