// Package config loads the project-level .quantgov.yml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jnelson16/quantgov/internal/sanity"
)

const configFileName = ".quantgov.yml"

// CorpusConfig selects which documents a metric run streams.
type CorpusConfig struct {
	// Root is the directory to walk for documents.
	Root string `yaml:"root"`

	// Include and Exclude are doublestar patterns relative to Root.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Name optionally restricts files by base name glob.
	Name string `yaml:"name"`

	// Markdown extracts plain text from Markdown documents.
	Markdown bool `yaml:"markdown"`

	// Index switches to a CSV-driven corpus when set.
	Index string `yaml:"index"`

	// IndexHeader marks the index file's first row as a header.
	IndexHeader bool `yaml:"index_header"`
}

// Config is the full project configuration.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`

	// Metadata is the default metadata file for the sanity check.
	Metadata string `yaml:"metadata"`

	// Cutoff is the default sanity-check warning threshold.
	Cutoff float64 `yaml:"cutoff"`

	// Output is the default results file; empty means stdout.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Root:    ".",
			Include: []string{"**/*.txt"},
		},
		Metadata: filepath.Join("data", "metadata.csv"),
		Cutoff:   sanity.DefaultCutoff,
	}
}

// Load reads and parses a config file at the given path, filling
// unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Cutoff <= 0 {
		cfg.Cutoff = sanity.DefaultCutoff
	}
	return cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .quantgov.yml config file. It stops searching when it encounters a
// .git directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repo root; do not search past it.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
