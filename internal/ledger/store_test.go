package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
	"github.com/syafitri453/Finance-Apps/internal/logging"
	"github.com/syafitri453/Finance-Apps/internal/models"
)

func TestNewStoreSeedsDefaultCategories(t *testing.T) {
	store := NewStore()
	assert.Equal(t, DefaultCategories, store.Categories())
}

func TestNewStoreWithCategoriesCollapsesDuplicates(t *testing.T) {
	store := NewStoreWithCategories([]string{"A", "B", "A", "C", "B"})
	assert.Equal(t, []string{"A", "B", "C"}, store.Categories())
}

func TestAddTransaction(t *testing.T) {
	store := NewStore()
	date := models.NewDate(2024, time.January, 15)

	tx, err := store.AddTransaction(date, models.KindIncome, "Gaji", decimal.NewFromInt(5000000), "monthly salary")
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, models.KindIncome, tx.Kind)
	assert.Equal(t, "Gaji", tx.Category)

	list := store.Transactions()
	require.Len(t, list, 1)
	assert.Equal(t, tx, list[0])
}

func TestAddTransactionRejectsNonPositiveAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{name: "Zero", amount: decimal.Zero},
		{name: "Negative", amount: decimal.NewFromInt(-100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			date := models.NewDate(2024, time.January, 15)

			_, err := store.AddTransaction(date, models.KindExpense, "Makanan", tt.amount, "")
			require.Error(t, err)

			var validationErr *apperror.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "amount", validationErr.Field)
			assert.Empty(t, store.Transactions(), "store must be unchanged after a rejected mutation")
		})
	}
}

func TestAddTransactionRejectsUnknownKind(t *testing.T) {
	store := NewStore()
	_, err := store.AddTransaction(models.NewDate(2024, time.January, 1), models.Kind("Transfer"), "Lainnya", decimal.NewFromInt(10), "")

	var validationErr *apperror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, store.Transactions())
}

func TestTransactionsInsertionOrder(t *testing.T) {
	store := NewStore()
	date := models.NewDate(2024, time.March, 1)

	first, err := store.AddTransaction(date, models.KindExpense, "Makanan", decimal.NewFromInt(200000), "")
	require.NoError(t, err)
	second, err := store.AddTransaction(date, models.KindExpense, "Transportasi", decimal.NewFromInt(50000), "")
	require.NoError(t, err)

	list := store.Transactions()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestAddCategory(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.AddCategory("Investasi"))
	assert.Contains(t, store.Categories(), "Investasi")

	err := store.AddCategory("Investasi")
	var duplicateErr *apperror.DuplicateError
	assert.ErrorAs(t, err, &duplicateErr)
}

func TestAddCategoryIsCaseSensitive(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.AddCategory("investasi"))
	require.NoError(t, store.AddCategory("Investasi"))
}

func TestRemoveCategory(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.RemoveCategory("Hiburan"))
	assert.NotContains(t, store.Categories(), "Hiburan")

	err := store.RemoveCategory("Hiburan")
	var notFoundErr *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestRemoveCategoryLeavesReferencingTransactionsUntouched(t *testing.T) {
	store := NewStore()
	date := models.NewDate(2024, time.April, 2)

	tx, err := store.AddTransaction(date, models.KindExpense, "Hiburan", decimal.NewFromInt(75000), "cinema")
	require.NoError(t, err)

	require.NoError(t, store.RemoveCategory("Hiburan"))

	list := store.Transactions()
	require.Len(t, list, 1)
	assert.Equal(t, tx, list[0], "dangling category reference must not alter the record")
}

func TestResetClearsTransactionsOnly(t *testing.T) {
	store := NewStore()
	date := models.NewDate(2024, time.May, 10)

	_, err := store.AddTransaction(date, models.KindIncome, "Gaji", decimal.NewFromInt(1000000), "")
	require.NoError(t, err)
	require.NoError(t, store.AddCategory("Investasi"))

	store.Reset()

	assert.Empty(t, store.Transactions())
	assert.Contains(t, store.Categories(), "Investasi")
	assert.Contains(t, store.Categories(), "Makanan")
}

func TestImport(t *testing.T) {
	store := NewStore()
	txs := []models.Transaction{
		{Date: models.NewDate(2024, time.June, 1), Kind: models.KindIncome, Category: "Gaji", Amount: decimal.NewFromInt(100)},
		{Date: models.NewDate(2024, time.June, 2), Kind: models.KindExpense, Category: "Makanan", Amount: decimal.NewFromInt(40)},
	}

	require.NoError(t, store.Import(txs))
	list := store.Transactions()
	require.Len(t, list, 2)
	assert.NotEmpty(t, list[0].ID)
	assert.NotEmpty(t, list[1].ID)
}

func TestImportRejectsInvalidRecordWithoutPartialApply(t *testing.T) {
	store := NewStore()
	txs := []models.Transaction{
		{Date: models.NewDate(2024, time.June, 1), Kind: models.KindIncome, Category: "Gaji", Amount: decimal.NewFromInt(100)},
		{Date: models.NewDate(2024, time.June, 2), Kind: models.KindExpense, Category: "Makanan", Amount: decimal.Zero},
	}

	err := store.Import(txs)
	var validationErr *apperror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, store.Transactions(), "a failed import must not apply any records")
}

func TestAddTransactionLogsStructuredFields(t *testing.T) {
	mock := &logging.MockLogger{}
	store := NewStoreWithLogger(DefaultCategories, mock)

	_, err := store.AddTransaction(models.NewDate(2024, time.February, 1), models.KindExpense, "Makanan", decimal.NewFromInt(25000), "")
	require.NoError(t, err)

	require.NotEmpty(t, mock.Entries)
	entry := mock.Entries[len(mock.Entries)-1]
	assert.Equal(t, "DEBUG", entry.Level)
	assert.Equal(t, "Transaction added", entry.Message)

	fields := make(map[string]interface{})
	for _, f := range entry.Fields {
		fields[f.Key] = f.Value
	}
	assert.Equal(t, "Makanan", fields[logging.FieldCategory])
	assert.Equal(t, "Expense", fields[logging.FieldKind])
}
