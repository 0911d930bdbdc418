// Package commentary produces natural-language commentary on ledger and
// variance summaries through the Gemini API.
package commentary

import (
	"fmt"
	"strings"

	"github.com/syafitri453/Finance-Apps/internal/summary"
)

// BuildLedgerPrompt renders the aggregate figures of a ledger summary into a
// prompt for the model. Only aggregates go into the prompt, never the raw
// transaction notes.
func BuildLedgerPrompt(s *summary.LedgerSummary) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Review the monthly ledger figures below and write a short commentary (3-5 sentences) on spending habits, notable categories, and the overall balance. Be concrete and avoid generic advice.\n\n")

	fmt.Fprintf(&b, "Total income: %s\n", s.TotalIncome.String())
	fmt.Fprintf(&b, "Total expense: %s\n", s.TotalExpense.String())
	fmt.Fprintf(&b, "Balance: %s\n", s.Balance.String())

	if len(s.TopExpenseCategories) > 0 {
		b.WriteString("\nTop expense categories:\n")
		for _, ct := range s.TopExpenseCategories {
			fmt.Fprintf(&b, "- %s: %s\n", ct.Category, ct.Total.String())
		}
	}

	if len(s.MonthlyTrend) > 0 {
		b.WriteString("\nMonthly trend (period, kind, total):\n")
		for _, p := range s.MonthlyTrend {
			fmt.Fprintf(&b, "- %s %s %s\n", p.Period, p.Kind, p.Total.String())
		}
	}

	return b.String()
}

// BuildVariancePrompt renders a variance summary into a prompt for the model.
func BuildVariancePrompt(s *summary.VarianceSummary) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Review the budget variance figures below and write a short commentary (3-5 sentences) on where spending exceeded or stayed under budget. Be concrete and avoid generic advice.\n\n")

	fmt.Fprintf(&b, "Total budget: %s\n", s.TotalBudget.String())
	fmt.Fprintf(&b, "Total actual: %s\n", s.TotalActual.String())
	fmt.Fprintf(&b, "Total variance: %s (%s%%)\n", s.TotalVariance.String(), s.TotalVariancePct.String())
	fmt.Fprintf(&b, "Budget stats: min %s, max %s, mean %s\n",
		s.BudgetStats.Min.String(), s.BudgetStats.Max.String(), s.BudgetStats.Mean.String())
	fmt.Fprintf(&b, "Actual stats: min %s, max %s, mean %s\n",
		s.ActualStats.Min.String(), s.ActualStats.Max.String(), s.ActualStats.Mean.String())

	if len(s.PerCategory) > 0 {
		b.WriteString("\nPer category (budget, actual, variance):\n")
		for _, c := range s.PerCategory {
			fmt.Fprintf(&b, "- %s: %s, %s, %s\n", c.Category, c.Budget.String(), c.Actual.String(), c.Variance.String())
		}
	}

	return b.String()
}
