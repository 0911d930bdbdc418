package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
	"github.com/syafitri453/Finance-Apps/internal/models"
)

func TestWriteAndReadTransactionsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")

	transactions := []models.Transaction{
		{
			Date:     models.NewDate(2024, time.January, 10),
			Kind:     models.KindIncome,
			Category: "Gaji",
			Amount:   decimal.NewFromInt(5000000),
			Note:     "monthly salary",
		},
		{
			Date:     models.NewDate(2024, time.January, 12),
			Kind:     models.KindExpense,
			Category: "Makanan",
			Amount:   decimal.NewFromInt(200000),
			Note:     "",
		},
	}

	require.NoError(t, WriteTransactionsToCSV(transactions, path))

	got, err := ReadTransactionsFromCSV(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.KindIncome, got[0].Kind)
	assert.Equal(t, "Gaji", got[0].Category)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(5000000)))
	assert.Equal(t, "2024-01-12", got[1].Date.Format("2006-01-02"))
}

func TestLoadLedgerTransactionsRejectsInvalidRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	content := "Date,Kind,Category,Amount,Note\n" +
		"2024-01-05,Income,Gaji,5000000,\n" +
		"2024-01-10,Expense,Makanan,-50,oops\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	_, err := LoadLedgerTransactions(path)
	require.Error(t, err)

	var validationErr *apperror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestLoadLedgerTransactionsValidData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	content := "Date,Kind,Category,Amount,Note\n" +
		"2024-01-05,Income,Gaji,5000000,\n" +
		"2024-01-10,Pengeluaran,Makanan,200000,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	got, err := LoadLedgerTransactions(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.KindExpense, got[1].Kind)
	assert.NotEmpty(t, got[0].ID, "loading assigns transaction IDs")
}

func TestWriteTransactionsToCSVRejectsNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}

func TestReadTransactionsFromCSVMissingFile(t *testing.T) {
	_, err := ReadTransactionsFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadTableCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.csv")
	content := "Category,Budget,Actual\nMakanan,100,120\nTransportasi,200,150\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	rows, err := ReadTableCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Makanan", rows[0]["Category"])
	assert.Equal(t, "120", rows[0]["Actual"])
	assert.Equal(t, "200", rows[1]["Budget"])
}

func TestReadTableCSVEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(""), 0600))

	_, err := ReadTableCSV(path)
	assert.Error(t, err)
}
