// Package memory provides the in-memory implementations of the repository
// interfaces: the source registry, the video catalog, and the per-source
// metrics store. Nothing here is persisted; all state lives for the
// process lifetime only.
package memory

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"videonews-feed/internal/domain/entity"
)

//go:embed sources.yaml
var defaultSourcesYAML []byte

type sourcesFile struct {
	Sources []entity.NewsSource `yaml:"sources"`
}

// DefaultSources returns the embedded source registry seed.
func DefaultSources() ([]entity.NewsSource, error) {
	return parseSources(defaultSourcesYAML)
}

// LoadSources reads a source registry seed from path, falling back to the
// embedded seed when path is empty.
func LoadSources(path string) ([]entity.NewsSource, error) {
	if path == "" {
		return DefaultSources()
	}
	data, err := os.ReadFile(path) // #nosec G304 -- operator-provided config path
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	return parseSources(data)
}

func parseSources(data []byte) ([]entity.NewsSource, error) {
	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources yaml: %w", err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("sources yaml: no sources defined")
	}

	seen := make(map[string]bool, len(f.Sources))
	for i := range f.Sources {
		src := &f.Sources[i]
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("source %q: %w", src.ID, err)
		}
		if seen[src.ID] {
			return nil, fmt.Errorf("source %q: duplicate id", src.ID)
		}
		seen[src.ID] = true
	}
	return f.Sources, nil
}
