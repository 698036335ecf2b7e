// Package config loads the optional cppfqn.toml found above the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Find.
const FileName = "cppfqn.toml"

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	Output OutputConfig `toml:"output"`
	Run    RunConfig    `toml:"run"`
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	Format string `toml:"format"` // pretty|json|tree|short
	Color  string `toml:"color"`  // auto|on|off
}

// RunConfig is the [run] section.
type RunConfig struct {
	Jobs           int    `toml:"jobs"` // 0 = GOMAXPROCS
	MaxDiagnostics int    `toml:"max_diagnostics"`
	UI             string `toml:"ui"` // auto|on|off
}

// File is a loaded configuration with its origin.
type File struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used when no cppfqn.toml exists.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Run:    RunConfig{Jobs: 0, MaxDiagnostics: 100, UI: "auto"},
	}
}

var (
	formats = []string{"pretty", "json", "tree", "short"}
	toggles = []string{"auto", "on", "off"}
)

// Find walks up from startDir to locate cppfqn.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
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

// Discover finds and loads the nearest cppfqn.toml. Without one it returns
// the defaults and ok=false.
func Discover(startDir string) (file *File, ok bool, err error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &File{Config: Default()}, false, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &File{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Load decodes path on top of the defaults and validates enumerated values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("output", "format") {
		if err := oneOf(path, "[output].format", &cfg.Output.Format, formats); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("output", "color") {
		if err := oneOf(path, "[output].color", &cfg.Output.Color, toggles); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("run", "ui") {
		if err := oneOf(path, "[run].ui", &cfg.Run.UI, toggles); err != nil {
			return Config{}, err
		}
	}
	if cfg.Run.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [run].jobs must be >= 0", path)
	}
	if cfg.Run.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [run].max_diagnostics must be >= 0", path)
	}
	return cfg, nil
}

func oneOf(path, key string, value *string, allowed []string) error {
	v := strings.ToLower(strings.TrimSpace(*value))
	for _, a := range allowed {
		if v == a {
			*value = v
			return nil
		}
	}
	return fmt.Errorf("%s: %s must be one of %s, got %q", path, key, strings.Join(allowed, "|"), *value)
}
