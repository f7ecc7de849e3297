// Package store loads tunable category keyword tables from YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CategoryConfig is one category entry in the YAML keyword table.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoryStore manages loading of category keyword data.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store for the given categories file. An empty
// path means only built-in defaults are used.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// LoadCategories reads the ordered category keyword table. A missing file is
// not an error: it returns an empty table so the caller keeps its defaults.
func (s *CategoryStore) LoadCategories() ([]CategoryConfig, error) {
	if s.CategoriesFile == "" {
		return nil, nil
	}

	path, err := s.findConfigFile(s.CategoriesFile)
	if err != nil {
		return nil, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("error reading categories file %s: %w", path, err)
	}

	var wrapper struct {
		Categories []CategoryConfig `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", path, err)
	}
	return wrapper.Categories, nil
}

// findConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "pdf-csv", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
