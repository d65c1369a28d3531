package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Transaction represents one row in expenses.csv.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal // negative = expense, non-negative = income
}

// IsExpense reports whether the transaction reduces the balance.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// SuggestedCategories are the categories offered in the add prompt.
// They are hints only; any string is a valid category.
var SuggestedCategories = []string{"Food", "Travel", "Fun", "Medical", "Personal", "Other"}

// Capitalize upper-cases the first rune of s.
// "food" -> "Food", "" -> "".
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// NormalizeCategory lower-cases a category for case-insensitive grouping
// and matching.
func NormalizeCategory(s string) string {
	return strings.ToLower(s)
}
