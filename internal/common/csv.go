// Package common provides the shared CSV import and export helpers used by
// the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/syafitri453/Finance-Apps/internal/fileutils"
	"github.com/syafitri453/Finance-Apps/internal/ledger"
	"github.com/syafitri453/Finance-Apps/internal/logging"
	"github.com/syafitri453/Finance-Apps/internal/models"
	"github.com/syafitri453/Finance-Apps/internal/variance"
)

var log = logging.GetLogger()

// Global CSV delimiter - can be configured via centralized config or environment variable
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV input and output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.WithField("file", filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully read CSV data")
	return rows, nil
}

// ReadTransactionsFromCSV reads a transaction CSV file (columns: Date, Kind,
// Category, Amount, Note) into transaction records.
func ReadTransactionsFromCSV(filePath string) ([]models.Transaction, error) {
	return ReadCSVFile[models.Transaction](filePath)
}

// LoadLedgerTransactions reads a transaction CSV file and validates every
// record through a ledger store before anything downstream sees it. A record
// with an invalid kind or a non-positive amount fails the whole load.
func LoadLedgerTransactions(filePath string) ([]models.Transaction, error) {
	transactions, err := ReadTransactionsFromCSV(filePath)
	if err != nil {
		return nil, err
	}

	store := ledger.NewStore()
	if err := store.Import(transactions); err != nil {
		log.WithError(err).Error("Rejected invalid transaction data")
		return nil, fmt.Errorf("invalid transaction data in %s: %w", filePath, err)
	}
	return store.Transactions(), nil
}

// WriteTransactionsToCSV writes transactions to a CSV file in the standard
// export format (columns: Date, Kind, Category, Amount, Note).
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}

// ReadTableCSV reads a delimited file with arbitrary columns into the row
// shape consumed by the variance calculator. The first record is the header.
func ReadTableCSV(filePath string) ([]variance.Row, error) {
	log.WithField("file", filePath).Info("Reading tabular CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file: %s", filePath)
	}

	header := records[0]
	rows := make([]variance.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(variance.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	log.WithField("count", len(rows)).Info("Successfully read tabular CSV data")
	return rows, nil
}
