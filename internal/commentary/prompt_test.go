package commentary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syafitri453/Finance-Apps/internal/ledger"
	"github.com/syafitri453/Finance-Apps/internal/models"
	"github.com/syafitri453/Finance-Apps/internal/summary"
	"github.com/syafitri453/Finance-Apps/internal/variance"
)

func TestBuildLedgerPromptContainsAggregates(t *testing.T) {
	store := ledger.NewStore()
	_, err := store.AddTransaction(models.NewDate(2024, time.March, 1), models.KindIncome, "Gaji", decimal.NewFromInt(5000000), "")
	require.NoError(t, err)
	_, err = store.AddTransaction(models.NewDate(2024, time.March, 3), models.KindExpense, "Makanan", decimal.NewFromInt(200000), "nasi goreng")
	require.NoError(t, err)

	s, err := summary.BuildLedgerSummary(store.Transactions())
	require.NoError(t, err)

	prompt := BuildLedgerPrompt(s)
	assert.Contains(t, prompt, "Total income: 5000000")
	assert.Contains(t, prompt, "Balance: 4800000")
	assert.Contains(t, prompt, "Makanan")
	// Raw notes stay out of the prompt.
	assert.NotContains(t, prompt, "nasi goreng")
}

func TestBuildVariancePromptContainsStats(t *testing.T) {
	table, err := variance.NewTable([]variance.Row{
		{"Category": "Makanan", "Budget": "100", "Actual": "120"},
		{"Category": "Transportasi", "Budget": "200", "Actual": "150"},
	}, "Budget", "Actual", "Category")
	require.NoError(t, err)

	s, err := summary.BuildVarianceSummary(table)
	require.NoError(t, err)

	prompt := BuildVariancePrompt(s)
	assert.Contains(t, prompt, "Total budget: 300")
	assert.Contains(t, prompt, "Total actual: 270")
	assert.Contains(t, prompt, "Transportasi")
}
