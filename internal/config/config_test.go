package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[output]\nformat = \"JSON\"\n\n[run]\njobs = 4\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	file, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	if file.Path != path || file.Root != root {
		t.Errorf("found %q (root %q), want %q", file.Path, file.Root, path)
	}
	got := file.Config
	if got.Output.Format != "json" || got.Run.Jobs != 4 {
		t.Errorf("decoded %+v", got)
	}
	// Keys absent from the file keep their defaults.
	if got.Output.Color != "auto" || got.Run.MaxDiagnostics != 100 || got.Run.UI != "auto" {
		t.Errorf("defaults lost: %+v", got)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()
	if _, ok, err := Find(dir); err != nil || ok {
		// A cppfqn.toml above the temp dir would make this test meaningless.
		t.Skipf("unexpected config above %s: ok=%v err=%v", dir, ok, err)
	}
	file, ok, err := Discover(dir)
	if err != nil || ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	if file.Config != Default() {
		t.Errorf("config = %+v, want defaults", file.Config)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[output\n", "failed to parse TOML"},
		{"format", "[output]\nformat = \"xml\"\n", "[output].format must be one of"},
		{"color", "[output]\ncolor = \"maybe\"\n", "[output].color"},
		{"ui", "[run]\nui = \"sometimes\"\n", "[run].ui"},
		{"jobs", "[run]\njobs = -1\n", "[run].jobs"},
		{"max", "[run]\nmax_diagnostics = -5\n", "[run].max_diagnostics"},
		{"unknown", "[run]\nthreads = 2\n", "unknown key run.threads"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want substring %q", err, tt.want)
			}
		})
	}
}
