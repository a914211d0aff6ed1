package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is a YAML list of statement files to process in one batch.
type Manifest struct {
	Statements []Statement `yaml:"statements"`
}

// Statement is a single file entry in a manifest. Type is optional; when
// empty the engine classifies the statement itself.
type Statement struct {
	FilePath string `yaml:"file"`
	Type     string `yaml:"type,omitempty"`
}

// File returns the absolute path to the statement file, expanding ~.
func (s *Statement) File() (string, error) {
	if strings.HasPrefix(s.FilePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, s.FilePath[2:]), nil
	}
	return s.FilePath, nil
}

// ManifestFromFile reads a manifest from a YAML file.
func ManifestFromFile(filePath string) (*Manifest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, err)
	}

	return &manifest, nil
}
