package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
	"github.com/syafitri453/Finance-Apps/internal/models"
	"github.com/syafitri453/Finance-Apps/internal/variance"
)

func sampleTransactions() []models.Transaction {
	date := models.NewDate(2024, time.January, 10)
	return []models.Transaction{
		{Date: date, Kind: models.KindIncome, Category: "Gaji", Amount: decimal.NewFromInt(5000000)},
		{Date: date, Kind: models.KindExpense, Category: "Makanan", Amount: decimal.NewFromInt(200000)},
		{Date: date, Kind: models.KindExpense, Category: "Transportasi", Amount: decimal.NewFromInt(50000)},
	}
}

func TestBuildLedgerSummary(t *testing.T) {
	s, err := BuildLedgerSummary(sampleTransactions())
	require.NoError(t, err)

	assert.Equal(t, "5000000", s.TotalIncome.String())
	assert.Equal(t, "250000", s.TotalExpense.String())
	assert.Equal(t, "4750000", s.Balance.String())

	require.Len(t, s.ExpenseByCategory, 2)
	assert.Equal(t, "200000", s.ExpenseByCategory["Makanan"].String())
	assert.Equal(t, "50000", s.ExpenseByCategory["Transportasi"].String())

	require.Len(t, s.IncomeByCategory, 1)
	assert.Equal(t, "5000000", s.IncomeByCategory["Gaji"].String())

	require.Len(t, s.TopExpenses, 2)
	assert.Equal(t, "Makanan", s.TopExpenses[0].Category)
	assert.Equal(t, "Transportasi", s.TopExpenses[1].Category)

	require.Len(t, s.TopExpenseCategories, 2)
	assert.Equal(t, "Makanan", s.TopExpenseCategories[0].Category)
	assert.Equal(t, "200000", s.TopExpenseCategories[0].Total.String())
}

func TestBuildLedgerSummaryMonthlyTrendOrdered(t *testing.T) {
	transactions := []models.Transaction{
		{Date: models.NewDate(2024, time.February, 5), Kind: models.KindExpense, Category: "Makanan", Amount: decimal.NewFromInt(100)},
		{Date: models.NewDate(2024, time.January, 5), Kind: models.KindIncome, Category: "Gaji", Amount: decimal.NewFromInt(900)},
		{Date: models.NewDate(2024, time.January, 20), Kind: models.KindExpense, Category: "Makanan", Amount: decimal.NewFromInt(50)},
	}

	s, err := BuildLedgerSummary(transactions)
	require.NoError(t, err)
	require.Len(t, s.MonthlyTrend, 3)

	assert.Equal(t, TrendPoint{Period: "2024-01", Kind: models.KindExpense, Total: decimal.NewFromInt(50)}, s.MonthlyTrend[0])
	assert.Equal(t, "2024-01", s.MonthlyTrend[1].Period)
	assert.Equal(t, models.KindIncome, s.MonthlyTrend[1].Kind)
	assert.Equal(t, "2024-02", s.MonthlyTrend[2].Period)
}

func TestBuildLedgerSummaryEmpty(t *testing.T) {
	s, err := BuildLedgerSummary(nil)
	require.NoError(t, err)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.MonthlyTrend)
	assert.Empty(t, s.TopExpenses)
}

func TestBuildLedgerSummaryIdempotent(t *testing.T) {
	transactions := sampleTransactions()

	first, err := BuildLedgerSummary(transactions)
	require.NoError(t, err)
	second, err := BuildLedgerSummary(transactions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildLedgerSummaryFailsOnUnsetDate(t *testing.T) {
	transactions := []models.Transaction{
		{Kind: models.KindExpense, Category: "Makanan", Amount: decimal.NewFromInt(100)},
	}

	s, err := BuildLedgerSummary(transactions)
	assert.Nil(t, s)

	var dataErr *apperror.DataError
	assert.ErrorAs(t, err, &dataErr)
}

func TestBuildVarianceSummary(t *testing.T) {
	rows := []variance.Row{
		{"Category": "Makanan", "Budget": "100", "Actual": "120"},
		{"Category": "Makanan", "Budget": "50", "Actual": "40"},
		{"Category": "Transportasi", "Budget": "200", "Actual": "150"},
	}
	table, err := variance.NewTable(rows, "Budget", "Actual", "Category")
	require.NoError(t, err)

	s, err := BuildVarianceSummary(table)
	require.NoError(t, err)

	require.Len(t, s.Rows, 3)
	assert.Equal(t, "350", s.TotalBudget.String())
	assert.Equal(t, "310", s.TotalActual.String())
	assert.Equal(t, "-40", s.TotalVariance.String())

	require.Len(t, s.PerCategory, 2)
	assert.Equal(t, "Makanan", s.PerCategory[0].Category)
	assert.Equal(t, "150", s.PerCategory[0].Budget.String())
	assert.Equal(t, "160", s.PerCategory[0].Actual.String())
	assert.Equal(t, "10", s.PerCategory[0].Variance.String())
	assert.Equal(t, "Transportasi", s.PerCategory[1].Category)
}

func TestBuildVarianceSummaryWithoutCategoryColumn(t *testing.T) {
	rows := []variance.Row{
		{"Budget": "100", "Actual": "120"},
	}
	table, err := variance.NewTable(rows, "Budget", "Actual", "")
	require.NoError(t, err)

	s, err := BuildVarianceSummary(table)
	require.NoError(t, err)
	assert.Nil(t, s.PerCategory)
}

func TestBuildVarianceSummaryPropagatesZeroBudget(t *testing.T) {
	rows := []variance.Row{
		{"Budget": "0", "Actual": "120"},
	}
	table, err := variance.NewTable(rows, "Budget", "Actual", "")
	require.NoError(t, err)

	s, err := BuildVarianceSummary(table)
	assert.Nil(t, s)

	var dataErr *apperror.DataError
	assert.ErrorAs(t, err, &dataErr)
}
