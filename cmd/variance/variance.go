// Package variance implements the budget variance command
package variance

import (
	"github.com/spf13/cobra"

	"github.com/syafitri453/Finance-Apps/cmd/root"
	"github.com/syafitri453/Finance-Apps/internal/common"
	"github.com/syafitri453/Finance-Apps/internal/config"
	"github.com/syafitri453/Finance-Apps/internal/report"
	"github.com/syafitri453/Finance-Apps/internal/summary"
	"github.com/syafitri453/Finance-Apps/internal/validation"
	"github.com/syafitri453/Finance-Apps/internal/variance"
)

// Cmd represents the variance command
var Cmd = &cobra.Command{
	Use:   "variance",
	Short: "Compute budget-vs-actual variance from a CSV table",
	Long: `Reads a tabular CSV file with budget and actual columns and reports
per-row variance, totals and descriptive statistics. When a category
column is given the report also includes a per-category breakdown.`,
	Run: varianceFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.BudgetCol, "budget-col", "Budget", "Name of the budget column")
	Cmd.Flags().StringVar(&root.ActualCol, "actual-col", "Actual", "Name of the actual column")
	Cmd.Flags().StringVar(&root.CategoryCol, "category-col", "", "Name of the category column (optional)")
}

// applyConfigDefaults lets the viper config supply column names for flags the
// user did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command) {
	cfg := config.GetGlobalConfig()
	if !cmd.Flags().Changed("budget-col") && cfg.Variance.BudgetColumn != "" {
		root.BudgetCol = cfg.Variance.BudgetColumn
	}
	if !cmd.Flags().Changed("actual-col") && cfg.Variance.ActualColumn != "" {
		root.ActualCol = cfg.Variance.ActualColumn
	}
	if !cmd.Flags().Changed("category-col") && cfg.Variance.CategoryColumn != "" {
		root.CategoryCol = cfg.Variance.CategoryColumn
	}
}

func varianceFunc(cmd *cobra.Command, args []string) {
	applyConfigDefaults(cmd)
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}
	if err := validation.IsValidInputPath(root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Invalid input: %v", err)
	}
	if err := validation.IsValidOutputFormat(root.SharedFlags.Format); err != nil {
		root.Log.Fatalf("Invalid format: %v", err)
	}

	root.Log.Infof("Input table file: %s", root.SharedFlags.Input)

	rows, err := common.ReadTableCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading table: %v", err)
	}

	table, err := variance.NewTable(rows, root.BudgetCol, root.ActualCol, root.CategoryCol)
	if err != nil {
		root.Log.Fatalf("Error validating table: %v", err)
	}

	s, err := summary.BuildVarianceSummary(table)
	if err != nil {
		root.Log.Fatalf("Error computing variance: %v", err)
	}

	data, err := report.NewReportGenerator().GenerateVarianceReport(s, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error rendering variance report: %v", err)
	}

	if err := root.WriteOutput(data); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
	root.Log.Info("Variance analysis completed successfully!")
}
