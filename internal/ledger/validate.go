package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

// ValidationError describes a rejected transaction field on the add path.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// dateFormats are the date layouts accepted on input. Storage always
// uses the first.
var dateFormats = []string{"2006-01-02", "2006/01/02"}

// ParseDate parses a user-supplied date in YYYY-MM-DD or YYYY/MM/DD form.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("want YYYY-MM-DD or YYYY/MM/DD")
}

// ParseAmount parses a user-supplied amount. A leading minus denotes an
// expense.
func ParseAmount(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("want a signed decimal")
	}
	return amt, nil
}

// NewTransaction validates raw field values and builds a Transaction.
// The category is capitalized; description and category may be empty.
// Returns a *ValidationError if the date or amount does not parse.
func NewTransaction(date, description, category, amount string) (model.Transaction, error) {
	d, err := ParseDate(date)
	if err != nil {
		return model.Transaction{}, &ValidationError{Field: "date", Value: date, Err: err}
	}

	amt, err := ParseAmount(amount)
	if err != nil {
		return model.Transaction{}, &ValidationError{Field: "amount", Value: amount, Err: err}
	}

	return model.Transaction{
		Date:        d,
		Description: description,
		Category:    model.Capitalize(category),
		Amount:      amt,
	}, nil
}
