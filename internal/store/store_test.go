package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syafitri453/Finance-Apps/internal/ledger"
)

func TestLoadCategoriesMissingFileReturnsDefaults(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))

	categories, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultCategories, categories)
}

func TestSaveAndLoadCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewCategoryStore(path)

	want := []string{"Makanan", "Transportasi", "Investasi"}
	require.NoError(t, s.SaveCategories(want))

	got, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCategoriesDirectListFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := "- Makanan\n- Gaji\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s := NewCategoryStore(path)
	got, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Makanan", "Gaji"}, got)
}

func TestLoadCategoriesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {broken"), 0600))

	s := NewCategoryStore(path)
	_, err := s.LoadCategories()
	assert.Error(t, err)
}
