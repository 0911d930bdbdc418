// Package store provides functionality for persisting the category list
// between command invocations.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/syafitri453/Finance-Apps/internal/fileutils"
	"github.com/syafitri453/Finance-Apps/internal/ledger"
	"github.com/syafitri453/Finance-Apps/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// categoriesConfig is the on-disk YAML shape of the category list.
type categoriesConfig struct {
	Categories []string `yaml:"categories"`
}

// CategoryStore manages loading and saving of the ordered category list.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for category data.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/finance-apps/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "finance-apps", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the category list from the YAML file. A missing file
// is not an error: the default category list is returned instead.
func (s *CategoryStore) LoadCategories() ([]string, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Categories file not found: %s, using defaults", filename)
			return append([]string(nil), ledger.DefaultCategories...), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var config categoriesConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Categories) > 0 {
		log.Debugf("Loaded %d categories from %s", len(config.Categories), filePath)
		return config.Categories, nil
	}

	// Fallback: a bare YAML list without the top-level key
	var categories []string
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.Debugf("Loaded %d categories from %s using direct list", len(categories), filePath)
	return categories, nil
}

// SaveCategories writes the category list back to the YAML file, creating it
// in the config directory when it does not exist yet.
func (s *CategoryStore) SaveCategories(categories []string) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving categories file: %w", err)
	}
	if err == os.ErrNotExist {
		if !filepath.IsAbs(filename) {
			filePath = filepath.Join("config", filename)
		} else {
			filePath = filename
		}
	}

	data, err := yaml.Marshal(categoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := fileutils.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	log.Debugf("Saved %d categories to %s", len(categories), filePath)
	return nil
}
