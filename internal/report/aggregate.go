// Package report computes the summary statistics behind the dashboard.
// Every function is a pure pass over the transaction sequence; nothing is
// cached because a personal ledger is small enough to recompute per
// refresh.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

// CategoryTotal is one group in a by-category breakdown. Category keeps
// the first-seen casing; grouping itself is case-insensitive.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TotalsByCategory sums amounts per category, signs preserved. Groups
// appear in first-seen order; categories with no transactions do not
// appear at all.
func TotalsByCategory(txns []model.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	labels := make(map[string]string)
	var order []string

	for _, txn := range txns {
		key := model.NormalizeCategory(txn.Category)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
			labels[key] = txn.Category
		}
		totals[key] = totals[key].Add(txn.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, key := range order {
		result = append(result, CategoryTotal{Category: labels[key], Total: totals[key]})
	}
	return result
}

// NetBalance is the signed sum of every amount.
func NetBalance(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}

// IncomeExpense holds the two sides of the income-vs-expense split.
// Expense is reported as an absolute value.
type IncomeExpense struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// IncomeVsExpense sums all positive amounts and, separately, the absolute
// value of all negative amounts. Income minus Expense equals NetBalance.
func IncomeVsExpense(txns []model.Transaction) IncomeExpense {
	var split IncomeExpense
	split.Income = decimal.Zero
	split.Expense = decimal.Zero
	for _, txn := range txns {
		if txn.IsExpense() {
			split.Expense = split.Expense.Add(txn.Amount.Neg())
		} else {
			split.Income = split.Income.Add(txn.Amount)
		}
	}
	return split
}

// Bucket selects the time unit for a trend series.
type Bucket int

const (
	BucketMonth Bucket = iota
	BucketYear
)

// Label formats the bucket a date falls into ("2024-01" for months,
// "2024" for years). Labels sort chronologically.
func (b Bucket) Label(date time.Time) string {
	if b == BucketYear {
		return date.Format("2006")
	}
	return date.Format("2006-01")
}

// BucketTotal is one point in a trend series.
type BucketTotal struct {
	Label string
	Total decimal.Decimal
}

// TimeSeries sums amounts per time bucket, in chronological order.
// Buckets with no transactions are omitted, not zero-filled.
func TimeSeries(txns []model.Transaction, bucket Bucket) []BucketTotal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		label := bucket.Label(txn.Date)
		totals[label] = totals[label].Add(txn.Amount)
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]BucketTotal, 0, len(labels))
	for _, label := range labels {
		result = append(result, BucketTotal{Label: label, Total: totals[label]})
	}
	return result
}
