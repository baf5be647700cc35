package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "mizlex.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Vocabulary vocabularyConfig `toml:"vocabulary"`
	Cache      cacheConfig      `toml:"cache"`
}

type vocabularyConfig struct {
	Path     string   `toml:"path"`
	Articles []string `toml:"articles"`
}

type cacheConfig struct {
	Enabled *bool  `toml:"enabled"`
	Dir     string `toml:"dir"`
}

func findMizlexToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findMizlexToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("vocabulary") && strings.TrimSpace(cfg.Vocabulary.Path) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [vocabulary].path", path)
	}
	for _, a := range cfg.Vocabulary.Articles {
		if strings.TrimSpace(a) == "" {
			return projectConfig{}, fmt.Errorf("%s: empty name in [vocabulary].articles", path)
		}
	}
	return cfg, nil
}

// vocabularyPath returns the configured vocabulary relative to the manifest root.
func (m *projectManifest) vocabularyPath() string {
	if m == nil || m.Config.Vocabulary.Path == "" {
		return ""
	}
	p := filepath.FromSlash(m.Config.Vocabulary.Path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

// cacheDir returns the configured cache directory relative to the manifest root.
func (m *projectManifest) cacheDir() string {
	if m == nil || m.Config.Cache.Dir == "" {
		return ""
	}
	p := filepath.FromSlash(m.Config.Cache.Dir)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}
