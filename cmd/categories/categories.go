// Package categories implements the category management commands
package categories

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syafitri453/Finance-Apps/cmd/root"
	"github.com/syafitri453/Finance-Apps/internal/config"
	"github.com/syafitri453/Finance-Apps/internal/ledger"
	"github.com/syafitri453/Finance-Apps/internal/store"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the transaction category list",
	Long: `Lists, adds and removes categories. The category list is persisted
to a YAML file between invocations.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an existing category",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

func init() {
	Cmd.PersistentFlags().StringVar(&root.CategoriesFile, "categories-file", "categories.yaml", "Categories YAML file")
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}

func loadStore(cmd *cobra.Command) (*store.CategoryStore, *ledger.Store) {
	file := root.CategoriesFile
	if f := cmd.Flag("categories-file"); f != nil && !f.Changed {
		if cfgFile := config.GetGlobalConfig().Categories.File; cfgFile != "" {
			file = cfgFile
		}
	}

	cs := store.NewCategoryStore(file)
	categories, err := cs.LoadCategories()
	if err != nil {
		root.Log.Fatalf("Error loading categories: %v", err)
	}
	return cs, ledger.NewStoreWithCategories(categories)
}

func listFunc(cmd *cobra.Command, args []string) {
	_, ls := loadStore(cmd)
	fmt.Println(strings.Join(ls.Categories(), "\n"))
}

func addFunc(cmd *cobra.Command, args []string) {
	cs, ls := loadStore(cmd)

	if err := ls.AddCategory(args[0]); err != nil {
		root.Log.Fatalf("Error adding category: %v", err)
	}
	if err := cs.SaveCategories(ls.Categories()); err != nil {
		root.Log.Fatalf("Error saving categories: %v", err)
	}
	root.Log.Infof("Added category %q", args[0])
}

func removeFunc(cmd *cobra.Command, args []string) {
	cs, ls := loadStore(cmd)

	if err := ls.RemoveCategory(args[0]); err != nil {
		root.Log.Fatalf("Error removing category: %v", err)
	}
	if err := cs.SaveCategories(ls.Categories()); err != nil {
		root.Log.Fatalf("Error saving categories: %v", err)
	}
	root.Log.Infof("Removed category %q", args[0])
}
