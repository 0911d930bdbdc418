// Package commentary implements the AI commentary command
package commentary

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/syafitri453/Finance-Apps/cmd/root"
	"github.com/syafitri453/Finance-Apps/internal/commentary"
	"github.com/syafitri453/Finance-Apps/internal/common"
	"github.com/syafitri453/Finance-Apps/internal/config"
	"github.com/syafitri453/Finance-Apps/internal/summary"
	"github.com/syafitri453/Finance-Apps/internal/validation"
	"github.com/syafitri453/Finance-Apps/internal/variance"
)

var asTable bool

// Cmd represents the commentary command
var Cmd = &cobra.Command{
	Use:   "commentary",
	Short: "Generate AI commentary on a ledger or variance table",
	Long: `Builds a summary of the input CSV and asks the Gemini API for a short
written commentary. Requires GEMINI_API_KEY to be set. Only aggregate
figures are sent to the API, never raw transaction notes.`,
	Run: commentaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asTable, "table", false, "Treat the input as a budget/actual table instead of a transaction ledger")
	Cmd.Flags().StringVar(&root.BudgetCol, "budget-col", "Budget", "Name of the budget column (with --table)")
	Cmd.Flags().StringVar(&root.ActualCol, "actual-col", "Actual", "Name of the actual column (with --table)")
	Cmd.Flags().StringVar(&root.CategoryCol, "category-col", "", "Name of the category column (with --table, optional)")
}

func commentaryFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}
	if err := validation.IsValidInputPath(root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Invalid input: %v", err)
	}

	cfg := config.GetGlobalConfig()
	apiKey := cfg.AI.APIKey
	if apiKey == "" {
		apiKey = config.GetGeminiAPIKey()
	}
	if apiKey == "" {
		root.Log.Fatal("GEMINI_API_KEY is not set, cannot generate commentary")
	}

	prompt := buildPrompt(cmd)

	ctx := context.Background()
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	gen, err := commentary.NewGeminiGenerator(ctx, apiKey, cfg.AI.Model, timeout, root.Log)
	if err != nil {
		root.Log.Fatalf("Error creating Gemini client: %v", err)
	}
	defer func() {
		if err := gen.Close(); err != nil {
			root.Log.Warnf("Failed to close Gemini client: %v", err)
		}
	}()

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		root.Log.Fatalf("Error generating commentary: %v", err)
	}

	if err := root.WriteOutput([]byte(text)); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
	root.Log.Info("Commentary generated successfully!")
}

func buildPrompt(cmd *cobra.Command) string {
	if asTable {
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
		return commentary.BuildVariancePrompt(s)
	}

	transactions, err := common.LoadLedgerTransactions(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}
	s, err := summary.BuildLedgerSummary(transactions)
	if err != nil {
		root.Log.Fatalf("Error building summary: %v", err)
	}
	return commentary.BuildLedgerPrompt(s)
}
