// Package document loads and writes the palette, base template, and theme
// artifact documents. JSON is the native format; YAML is accepted for the
// hand-edited inputs.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tonemill/tonemill/internal/theme"
)

// LoadPalette reads the source-of-truth palette document.
func LoadPalette(path string) (*theme.Palette, error) {
	var palette theme.Palette
	if err := load(path, &palette); err != nil {
		return nil, fmt.Errorf("failed to load palette: %w", err)
	}
	return &palette, nil
}

// LoadBase reads the base template document.
func LoadBase(path string) (*theme.Base, error) {
	var base theme.Base
	if err := load(path, &base); err != nil {
		return nil, fmt.Errorf("failed to load base template: %w", err)
	}
	return &base, nil
}

// LoadTheme reads a generated theme artifact in generic form, which is what
// the validators and the drift check consume.
func LoadTheme(path string) (map[string]any, error) {
	var doc map[string]any
	if err := load(path, &doc); err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return doc, nil
}

// load reads a document, dispatching on the file extension.
func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if isYAML(path) {
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

// isYAML reports whether a path names a YAML document.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// WriteJSON writes a document as two-space-indented JSON with a trailing
// newline, creating parent directories as needed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
