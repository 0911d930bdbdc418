// Package report renders ledger and variance summaries for output.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/syafitri453/Finance-Apps/internal/logging"
	"github.com/syafitri453/Finance-Apps/internal/summary"
)

// ReportGenerator renders summaries in the supported output formats (json or text).
type ReportGenerator struct {
	logger *logrus.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{
		logger: logging.GetLogger().WithField("component", "ReportGenerator").Logger,
	}
}

// GenerateLedgerReport renders a ledger summary in the specified format.
func (g *ReportGenerator) GenerateLedgerReport(s *summary.LedgerSummary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(s)
	case "text":
		return []byte(g.renderLedgerText(s)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GenerateVarianceReport renders a variance summary in the specified format.
func (g *ReportGenerator) GenerateVarianceReport(s *summary.VarianceSummary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(s)
	case "text":
		return []byte(g.renderVarianceText(s)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *ReportGenerator) renderLedgerText(s *summary.LedgerSummary) string {
	var b strings.Builder

	b.WriteString("Ledger Summary\n")
	b.WriteString("==============\n")
	fmt.Fprintf(&b, "Total income:  %s\n", s.TotalIncome.String())
	fmt.Fprintf(&b, "Total expense: %s\n", s.TotalExpense.String())
	fmt.Fprintf(&b, "Balance:       %s\n", s.Balance.String())

	if len(s.IncomeByCategory) > 0 {
		b.WriteString("\nIncome by category\n")
		writeCategoryMap(&b, s.IncomeByCategory)
	}
	if len(s.ExpenseByCategory) > 0 {
		b.WriteString("\nExpense by category\n")
		writeCategoryMap(&b, s.ExpenseByCategory)
	}

	if len(s.MonthlyTrend) > 0 {
		b.WriteString("\nMonthly trend\n")
		for _, p := range s.MonthlyTrend {
			fmt.Fprintf(&b, "  %s  %-11s %s\n", p.Period, p.Kind, p.Total.String())
		}
	}

	if len(s.TopExpenses) > 0 {
		b.WriteString("\nTop expenses\n")
		for _, tx := range s.TopExpenses {
			fmt.Fprintf(&b, "  %s  %-15s %s\n", tx.Date.Format("2006-01-02"), tx.Category, tx.Amount.String())
		}
	}

	if len(s.TopExpenseCategories) > 0 {
		b.WriteString("\nTop expense categories\n")
		for _, ct := range s.TopExpenseCategories {
			fmt.Fprintf(&b, "  %-15s %s\n", ct.Category, ct.Total.String())
		}
	}

	return b.String()
}

func (g *ReportGenerator) renderVarianceText(s *summary.VarianceSummary) string {
	var b strings.Builder

	b.WriteString("Variance Summary\n")
	b.WriteString("================\n")
	fmt.Fprintf(&b, "Total budget:   %s\n", s.TotalBudget.String())
	fmt.Fprintf(&b, "Total actual:   %s\n", s.TotalActual.String())
	fmt.Fprintf(&b, "Total variance: %s (%s%%)\n", s.TotalVariance.String(), s.TotalVariancePct.String())

	b.WriteString("\nBudget stats\n")
	fmt.Fprintf(&b, "  min %s  max %s  mean %s\n",
		s.BudgetStats.Min.String(), s.BudgetStats.Max.String(), s.BudgetStats.Mean.String())
	b.WriteString("Actual stats\n")
	fmt.Fprintf(&b, "  min %s  max %s  mean %s\n",
		s.ActualStats.Min.String(), s.ActualStats.Max.String(), s.ActualStats.Mean.String())

	if len(s.Rows) > 0 {
		b.WriteString("\nRows\n")
		for _, r := range s.Rows {
			label := r.Category
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(&b, "  %-15s budget %-12s actual %-12s variance %s (%s%%)\n",
				label, r.Budget.String(), r.Actual.String(), r.Variance.String(), r.VariancePct.String())
		}
	}

	if len(s.PerCategory) > 0 {
		b.WriteString("\nPer category\n")
		for _, c := range s.PerCategory {
			fmt.Fprintf(&b, "  %-15s budget %-12s actual %-12s variance %s\n",
				c.Category, c.Budget.String(), c.Actual.String(), c.Variance.String())
		}
	}

	return b.String()
}

func writeCategoryMap(b *strings.Builder, m map[string]decimal.Decimal) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "  %-15s %s\n", k, m[k].String())
	}
}
