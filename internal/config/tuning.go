package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dgallion1/pdfmd/internal/markdown"
)

// Tuning is the on-disk form of the heuristic parameters. The thresholds
// are deployment policy, so they live in a file operators can edit rather
// than in code.
type Tuning struct {
	HeadingMaxLen int      `yaml:"heading_max_len"`
	TableMinRows  int      `yaml:"table_min_rows"`
	Keywords      []string `yaml:"keywords"`
}

// LoadTuning reads a YAML tuning file and merges it over the built-in
// defaults. An empty path returns the defaults unchanged.
func LoadTuning(path string) (markdown.Options, error) {
	opts := markdown.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read tuning file: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return opts, fmt.Errorf("parse tuning file: %w", err)
	}

	if t.HeadingMaxLen > 0 {
		opts.HeadingMaxLen = t.HeadingMaxLen
	}
	if t.TableMinRows > 0 {
		opts.TableMinRows = t.TableMinRows
	}
	if len(t.Keywords) > 0 {
		opts.Keywords = t.Keywords
	}
	return opts, nil
}
