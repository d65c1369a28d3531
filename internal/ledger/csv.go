package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

// Header is the CSV header for expenses.csv.
const Header = "date,description,category,amount"

const (
	numFields   = 4
	dateFormat  = "2006-01-02"
	colDate     = 0
	colDesc     = 1
	colCategory = 2
	colAmount   = 3
)

// ParseError identifies a malformed record in expenses.csv. Row is the
// 1-based record number in the file, header included. Load aborts on the
// first malformed record; rows are never dropped silently.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadTransactions reads all transactions from an expenses.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	var txns []model.Transaction
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return txns, nil
		}
		row++
		if err != nil {
			return nil, &ParseError{Row: row, Err: fmt.Errorf("expected %d fields: %w", numFields, stripCSVPrefix(err))}
		}
		if row == 1 {
			// Header row.
			continue
		}
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, &ParseError{Row: row, Err: err}
		}
		txns = append(txns, txn)
	}
}

// stripCSVPrefix unwraps csv.ParseError so messages do not repeat the
// line number ParseError already carries.
func stripCSVPrefix(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// WriteTransactions writes transactions to an expenses.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing expenses.csv
// writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDesc] = txn.Description
	row[colCategory] = txn.Category
	row[colAmount] = txn.Amount.String()
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Description: record[colDesc],
		Category:    record[colCategory],
		Amount:      amount,
	}, nil
}
