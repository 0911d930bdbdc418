package categories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syafitri453/Finance-Apps/cmd/categories"
)

func TestCategoriesCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range categories.Cmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["list"])
	assert.True(t, names["add"])
	assert.True(t, names["remove"])
}

func TestCategoriesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.NotNil(t, categories.Cmd.PersistentFlags().Lookup("categories-file"))
}
