// Package summary composes the aggregation and variance primitives into the
// structured reports consumed by presentation and by the commentary service.
// Builders are read-only snapshots: the same input always yields the same
// output.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/syafitri453/Finance-Apps/internal/analysis"
	"github.com/syafitri453/Finance-Apps/internal/models"
	"github.com/syafitri453/Finance-Apps/internal/variance"
)

const rankingSize = 5

// TrendPoint is one monthly trend bucket, ordered by period then kind so the
// series is stable across builds.
type TrendPoint struct {
	Period string          `json:"period"`
	Kind   models.Kind     `json:"kind"`
	Total  decimal.Decimal `json:"total"`
}

// LedgerSummary is the full derived view over a transaction list.
type LedgerSummary struct {
	TotalIncome          decimal.Decimal            `json:"total_income"`
	TotalExpense         decimal.Decimal            `json:"total_expense"`
	Balance              decimal.Decimal            `json:"balance"`
	IncomeByCategory     map[string]decimal.Decimal `json:"income_by_category"`
	ExpenseByCategory    map[string]decimal.Decimal `json:"expense_by_category"`
	MonthlyTrend         []TrendPoint               `json:"monthly_trend"`
	TopExpenses          []models.Transaction       `json:"top_expenses"`
	TopExpenseCategories []analysis.CategoryTotal   `json:"top_expense_categories"`
}

// BuildLedgerSummary derives the ledger report from the given transactions.
// No caching: every call recomputes from scratch.
func BuildLedgerSummary(transactions []models.Transaction) (*LedgerSummary, error) {
	trend, err := analysis.MonthlyTrend(transactions)
	if err != nil {
		return nil, err
	}

	byCategory := func(t models.Transaction) string { return t.Category }
	income := filterByKind(transactions, models.KindIncome)
	expenses := filterByKind(transactions, models.KindExpense)

	expenseByCategory := analysis.GroupSum(expenses, byCategory)

	s := &LedgerSummary{
		TotalIncome:          analysis.SumByKind(transactions, models.KindIncome),
		TotalExpense:         analysis.SumByKind(transactions, models.KindExpense),
		IncomeByCategory:     analysis.GroupSum(income, byCategory),
		ExpenseByCategory:    expenseByCategory,
		MonthlyTrend:         sortTrend(trend),
		TopExpenses:          analysis.TopN(expenses, rankingSize),
		TopExpenseCategories: analysis.TopCategories(expenseByCategory, rankingSize),
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	return s, nil
}

// CategoryVariance is the aggregate variance of one category of a tabular
// input.
type CategoryVariance struct {
	Category string          `json:"category"`
	Budget   decimal.Decimal `json:"budget"`
	Actual   decimal.Decimal `json:"actual"`
	Variance decimal.Decimal `json:"variance"`
}

// VarianceSummary is the variance report for one tabular input.
type VarianceSummary struct {
	Rows             []variance.VarianceRow `json:"rows"`
	TotalBudget      decimal.Decimal        `json:"total_budget"`
	TotalActual      decimal.Decimal        `json:"total_actual"`
	TotalVariance    decimal.Decimal        `json:"total_variance"`
	TotalVariancePct decimal.Decimal        `json:"total_variance_pct"`
	BudgetStats      variance.Stats         `json:"budget_stats"`
	ActualStats      variance.Stats         `json:"actual_stats"`
	PerCategory      []CategoryVariance     `json:"per_category,omitempty"`
}

// BuildVarianceSummary runs the variance calculation and, when the table
// carries a category column, adds the per-category breakdown.
func BuildVarianceSummary(table *variance.Table) (*VarianceSummary, error) {
	result, err := variance.Calculate(table)
	if err != nil {
		return nil, err
	}

	s := &VarianceSummary{
		Rows:             result.Rows,
		TotalBudget:      result.TotalBudget,
		TotalActual:      result.TotalActual,
		TotalVariance:    result.TotalVariance,
		TotalVariancePct: result.TotalVariancePct,
		BudgetStats:      result.BudgetStats,
		ActualStats:      result.ActualStats,
	}

	if table.CategoryCol != "" {
		s.PerCategory = groupByCategory(result.Rows)
	}

	return s, nil
}

func filterByKind(transactions []models.Transaction, kind models.Kind) []models.Transaction {
	var out []models.Transaction
	for _, tx := range transactions {
		if tx.Kind == kind {
			out = append(out, tx)
		}
	}
	return out
}

func sortTrend(trend map[analysis.TrendKey]decimal.Decimal) []TrendPoint {
	points := make([]TrendPoint, 0, len(trend))
	for key, total := range trend {
		points = append(points, TrendPoint{Period: key.Period, Kind: key.Kind, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Period != points[j].Period {
			return points[i].Period < points[j].Period
		}
		return points[i].Kind < points[j].Kind
	})
	return points
}

func groupByCategory(rows []variance.VarianceRow) []CategoryVariance {
	index := make(map[string]int)
	var out []CategoryVariance
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(out)
			index[row.Category] = i
			out = append(out, CategoryVariance{
				Category: row.Category,
				Budget:   decimal.Zero,
				Actual:   decimal.Zero,
				Variance: decimal.Zero,
			})
		}
		out[i].Budget = out[i].Budget.Add(row.Budget)
		out[i].Actual = out[i].Actual.Add(row.Actual)
		out[i].Variance = out[i].Variance.Add(row.Variance)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
