package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[vocabulary]
path = "mml/mml.vct"
articles = ["AFF_1", "AFVECT0"]

[cache]
enabled = false
dir = ".cache"
`)
	nested := filepath.Join(root, "text", "algebra")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, found, err := loadProjectManifest(nested)
	if err != nil || !found {
		t.Fatalf("loadProjectManifest: found=%v err=%v", found, err)
	}
	if got, want := m.vocabularyPath(), filepath.Join(root, "mml", "mml.vct"); got != want {
		t.Errorf("vocabularyPath = %q, want %q", got, want)
	}
	if got, want := m.cacheDir(), filepath.Join(root, ".cache"); got != want {
		t.Errorf("cacheDir = %q, want %q", got, want)
	}
	if len(m.Config.Vocabulary.Articles) != 2 {
		t.Errorf("articles = %v", m.Config.Vocabulary.Articles)
	}
	if m.Config.Cache.Enabled == nil || *m.Config.Cache.Enabled {
		t.Errorf("cache.enabled not decoded as false")
	}
}

func TestLoadProjectManifestMissing(t *testing.T) {
	dir := t.TempDir()
	m, found, err := loadProjectManifest(dir)
	// выше TempDir может оказаться чужой mizlex.toml; проверяем только отсутствие ошибки
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found && m == nil {
		t.Fatal("found manifest without config")
	}
}

func TestLoadProjectConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing path", "[vocabulary]\narticles = [\"A\"]\n", "missing [vocabulary].path"},
		{"unknown key", "[vocabulary]\npath = \"a.vct\"\ncolour = true\n", "unknown keys: vocabulary.colour"},
		{"empty article", "[vocabulary]\npath = \"a.vct\"\narticles = [\" \"]\n", "empty name"},
		{"bad toml", "[vocabulary\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := loadProjectConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}
