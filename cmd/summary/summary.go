// Package summary implements the ledger summary command
package summary

import (
	"github.com/spf13/cobra"

	"github.com/syafitri453/Finance-Apps/cmd/root"
	"github.com/syafitri453/Finance-Apps/internal/common"
	"github.com/syafitri453/Finance-Apps/internal/report"
	"github.com/syafitri453/Finance-Apps/internal/summary"
	"github.com/syafitri453/Finance-Apps/internal/validation"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a transaction ledger",
	Long: `Reads transactions from a CSV file and reports totals, balance,
per-category breakdowns, monthly trends and top expenses.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}
	if err := validation.IsValidInputPath(root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Invalid input: %v", err)
	}
	if err := validation.IsValidOutputFormat(root.SharedFlags.Format); err != nil {
		root.Log.Fatalf("Invalid format: %v", err)
	}

	root.Log.Infof("Input transactions file: %s", root.SharedFlags.Input)

	transactions, err := common.LoadLedgerTransactions(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}

	s, err := summary.BuildLedgerSummary(transactions)
	if err != nil {
		root.Log.Fatalf("Error building summary: %v", err)
	}

	data, err := report.NewReportGenerator().GenerateLedgerReport(s, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error rendering summary: %v", err)
	}

	if err := root.WriteOutput(data); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
	root.Log.Info("Ledger summary completed successfully!")
}
