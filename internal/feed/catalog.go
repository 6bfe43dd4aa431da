// Package feed is the ingestion collaborator: it pulls sector RSS
// feeds, gates items on category keywords, and hands the pipeline a
// materialized article list. Feed failures are isolated per source and
// never abort a collection run.
package feed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed feeds.yaml
var defaultCatalogYAML []byte

// Source is one RSS endpoint.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Category groups sources behind a shared keyword gate.
type Category struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
	Sources  []Source `yaml:"sources"`
}

// Catalog is the full feed configuration.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// DefaultCatalog returns the embedded shipped catalog.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog override from disk; an empty path means
// the embedded default.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed catalog %s: %w", path, err)
	}
	catalog, err := parseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parse feed catalog %s: %w", path, err)
	}
	return catalog, nil
}

func parseCatalog(raw []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(catalog.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}
	for i, c := range catalog.Categories {
		if strings.TrimSpace(c.Tag) == "" {
			return nil, fmt.Errorf("category %d has no tag", i)
		}
		if len(c.Sources) == 0 {
			return nil, fmt.Errorf("category %q has no sources", c.Tag)
		}
		for _, s := range c.Sources {
			if strings.TrimSpace(s.URL) == "" {
				return nil, fmt.Errorf("category %q has a source without a URL", c.Tag)
			}
		}
	}
	return &catalog, nil
}

// matches reports whether the text passes this category's keyword
// gate (case-insensitive substring, any keyword).
func (c Category) matches(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
