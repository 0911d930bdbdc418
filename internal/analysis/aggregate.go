// Package analysis provides the pure aggregation primitives shared by the
// ledger and variance pipelines: kind sums, keyed group sums, monthly trend
// bucketing and top-N rankings. Functions here are stateless and never
// mutate their input.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
	"github.com/syafitri453/Finance-Apps/internal/dateutils"
	"github.com/syafitri453/Finance-Apps/internal/models"
)

// TrendKey identifies one bucket of the monthly trend: a calendar year-month
// period ("YYYY-MM") and a transaction kind.
type TrendKey struct {
	Period string      `json:"period"`
	Kind   models.Kind `json:"kind"`
}

// SumByKind sums the amounts of all records matching the given kind.
// An empty result set sums to zero, never an error.
func SumByKind(records []models.Transaction, kind models.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range records {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// GroupSum groups records by the given key function and sums amounts per key.
// A key appears only if at least one record maps to it. The result is a map;
// consumers needing an order must sort it themselves.
func GroupSum(records []models.Transaction, keyFn func(models.Transaction) string) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range records {
		key := keyFn(tx)
		sums[key] = sums[key].Add(tx.Amount)
	}
	return sums
}

// MonthlyTrend buckets records by calendar year-month and kind, summing
// amounts per bucket. A record with an unset date fails the whole
// aggregation; no partial result is returned.
func MonthlyTrend(records []models.Transaction) (map[TrendKey]decimal.Decimal, error) {
	trend := make(map[TrendKey]decimal.Decimal)
	for i, tx := range records {
		if tx.Date.IsZero() {
			return nil, &apperror.DataError{
				Subject: "monthly trend",
				Row:     i,
				Reason:  "transaction has no usable date",
			}
		}
		key := TrendKey{Period: dateutils.YearMonth(tx.Date.Time), Kind: tx.Kind}
		trend[key] = trend[key].Add(tx.Amount)
	}
	return trend, nil
}

// TopN returns the n records with the largest amount, descending. Ties keep
// their original relative order. Fewer than n records returns all of them.
func TopN(records []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		return nil
	}

	ranked := make([]models.Transaction, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopCategories ranks the entries of a category-sum map descending by sum,
// bounded to n. Equal sums are ordered by category name so the ranking is
// deterministic.
func TopCategories(sums map[string]decimal.Decimal, n int) []CategoryTotal {
	if n <= 0 {
		return nil
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, sum := range sums {
		totals = append(totals, CategoryTotal{Category: category, Total: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// CategoryTotal is a derived per-category sum.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
