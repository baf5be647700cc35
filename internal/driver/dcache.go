package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"mizlex/internal/vct"
)

// Current schema version - increment when VocabPayload format changes
const vocabCacheSchemaVersion uint16 = 1

// Digest is a sha256 of a vocabulary file's bytes.
type Digest [32]byte

// VocabCache хранит декодированные словари на диске, ключ: хеш содержимого .vct.
// Thread-safe for concurrent access.
type VocabCache struct {
	mu  sync.RWMutex
	dir string
}

// VocabPayload is what gets serialized for one vocabulary file.
type VocabPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Source string // path the vocabulary was decoded from
	Vocab  *vct.Vocabulary
}

// OpenVocabCache opens a cache in dir, or in $XDG_CACHE_HOME/<app> when dir is empty.
func OpenVocabCache(dir, app string) (*VocabCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &VocabCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *VocabCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// KeyFor hashes vocabulary content.
func KeyFor(content []byte) Digest {
	return sha256.Sum256(content)
}

func (c *VocabCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "vocab", чтобы было что удалять руками.
	return filepath.Join(c.dir, "vocab", hexKey+".mp")
}

// Put serializes and writes a vocabulary to the cache.
func (c *VocabCache) Put(key Digest, payload *VocabPayload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = vocabCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode vocabulary cache: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached vocabulary. A missing entry or a stale schema is a miss.
func (c *VocabCache) Get(key Digest) (*VocabPayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out VocabPayload
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("decode vocabulary cache: %w", err)
	}
	if out.Schema != vocabCacheSchemaVersion || out.Vocab == nil {
		return nil, false, nil
	}
	return &out, true, nil
}

// DropAll removes every cached vocabulary.
func (c *VocabCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "vocab"))
}
