// Package ledger provides the in-memory transaction store that owns a
// session's transactions and category set.
package ledger

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
	"github.com/syafitri453/Finance-Apps/internal/logging"
	"github.com/syafitri453/Finance-Apps/internal/models"
)

// DefaultCategories is the category list a fresh store is seeded with.
var DefaultCategories = []string{
	"Makanan",
	"Transportasi",
	"Belanja",
	"Hiburan",
	"Gaji",
	"Lainnya",
}

// Store holds a session's transactions (append-only, insertion order) and its
// ordered set of unique category names. A store is constructed at session
// start and discarded at session end. Mutations are serialized so invariants
// hold even if a second goroutine touches the store.
type Store struct {
	mu           sync.Mutex
	transactions []models.Transaction
	categories   []string
	logger       logging.Logger
}

// NewStore creates a store seeded with the default categories.
func NewStore() *Store {
	return NewStoreWithCategories(DefaultCategories)
}

// NewStoreWithCategories creates a store seeded with the given categories.
// Duplicate seed names are collapsed to the first occurrence.
func NewStoreWithCategories(categories []string) *Store {
	return NewStoreWithLogger(categories, nil)
}

// NewStoreWithLogger creates a store with an injected logger. A nil logger
// falls back to the shared application logger.
func NewStoreWithLogger(categories []string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(logging.GetLogger())
	}
	s := &Store{logger: logger}
	seen := make(map[string]struct{}, len(categories))
	for _, name := range categories {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		s.categories = append(s.categories, name)
	}
	return s
}

// AddTransaction validates and appends a new transaction. The amount must be
// strictly positive and the kind must be known; on failure the store is left
// unchanged and no Transaction is constructed.
func (s *Store) AddTransaction(date models.Date, kind models.Kind, category string, amount decimal.Decimal, note string) (models.Transaction, error) {
	if !kind.Valid() {
		return models.Transaction{}, &apperror.ValidationError{
			Field:  "kind",
			Value:  string(kind),
			Reason: "must be Income or Expense",
		}
	}
	if !amount.IsPositive() {
		return models.Transaction{}, &apperror.ValidationError{
			Field:  "amount",
			Value:  amount.String(),
			Reason: "must be greater than zero",
		}
	}

	tx := models.Transaction{
		ID:       uuid.NewString(),
		Date:     date,
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Note:     note,
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	s.mu.Unlock()

	s.logger.Debug("Transaction added",
		logging.Field{Key: logging.FieldKind, Value: string(kind)},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
	)

	return tx, nil
}

// Import appends already-validated transactions in order, assigning IDs to
// records that lack one. Records failing validation abort the import before
// anything is appended.
func (s *Store) Import(transactions []models.Transaction) error {
	for _, tx := range transactions {
		if !tx.Kind.Valid() {
			return &apperror.ValidationError{
				Field:  "kind",
				Value:  string(tx.Kind),
				Reason: "must be Income or Expense",
			}
		}
		if !tx.Amount.IsPositive() {
			return &apperror.ValidationError{
				Field:  "amount",
				Value:  tx.Amount.String(),
				Reason: "must be greater than zero",
			}
		}
	}

	s.mu.Lock()
	for _, tx := range transactions {
		if tx.ID == "" {
			tx.ID = uuid.NewString()
		}
		s.transactions = append(s.transactions, tx)
	}
	s.mu.Unlock()

	s.logger.Info("Transactions imported",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}

// Transactions returns the stored transactions in insertion order.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// AddCategory appends a new category name. Names are matched exactly
// (case-sensitive); an existing name is rejected.
func (s *Store) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing == name {
			return &apperror.DuplicateError{Resource: "category", Name: name}
		}
	}
	s.categories = append(s.categories, name)
	return nil
}

// RemoveCategory removes a category name. Transactions referencing the
// removed category are left unchanged; the dangling reference is tolerated.
func (s *Store) RemoveCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.categories {
		if existing == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return &apperror.NotFoundError{Resource: "category", Name: name}
}

// Categories returns the ordered category names.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Reset clears all transactions. The category set is untouched.
func (s *Store) Reset() {
	s.mu.Lock()
	s.transactions = nil
	s.mu.Unlock()
}
