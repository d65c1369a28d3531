package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// The ledger from the dashboard walkthrough: lunch, salary, movie.
func sampleLedger() []model.Transaction {
	return []model.Transaction{
		{Date: date(2024, 1, 5), Description: "Lunch", Category: "Food", Amount: dec("-1200")},
		{Date: date(2024, 1, 10), Description: "Salary", Category: "Income", Amount: dec("300000")},
		{Date: date(2024, 2, 1), Description: "Movie", Category: "Fun", Amount: dec("-1500")},
	}
}

func TestNetBalance(t *testing.T) {
	assert.True(t, NetBalance(sampleLedger()).Equal(dec("297300")))
	assert.True(t, NetBalance(nil).IsZero(), "empty store is a zero sum, not an error")
}

func TestTotalsByCategory(t *testing.T) {
	got := TotalsByCategory(sampleLedger())
	require.Len(t, got, 3)

	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("-1200")))
	assert.Equal(t, "Income", got[1].Category)
	assert.True(t, got[1].Total.Equal(dec("300000")))
	assert.Equal(t, "Fun", got[2].Category)
	assert.True(t, got[2].Total.Equal(dec("-1500")))
}

func TestTotalsByCategory_CaseInsensitiveGrouping(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Category: "Food", Amount: dec("-10")},
		{Date: date(2024, 1, 2), Category: "food", Amount: dec("-5")},
		{Date: date(2024, 1, 3), Category: "FOOD", Amount: dec("-1")},
	}

	got := TotalsByCategory(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Category, "first-seen casing is the label")
	assert.True(t, got[0].Total.Equal(dec("-16")))
}

func TestTotalsByCategory_SumLaw(t *testing.T) {
	txns := sampleLedger()

	sum := decimal.Zero
	for _, ct := range TotalsByCategory(txns) {
		sum = sum.Add(ct.Total)
	}
	assert.True(t, sum.Equal(NetBalance(txns)), "category totals must add up to the net balance")
}

func TestIncomeVsExpense(t *testing.T) {
	split := IncomeVsExpense(sampleLedger())

	assert.True(t, split.Income.Equal(dec("300000")))
	assert.True(t, split.Expense.Equal(dec("2700")), "expense side is reported absolute")
	assert.True(t, split.Income.Sub(split.Expense).Equal(NetBalance(sampleLedger())))
}

func TestIncomeVsExpense_ZeroAmount(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Category: "Wash", Amount: dec("0")},
	}

	split := IncomeVsExpense(txns)
	assert.True(t, split.Income.IsZero())
	assert.True(t, split.Expense.IsZero())
}

func TestTimeSeries_Month(t *testing.T) {
	got := TimeSeries(sampleLedger(), BucketMonth)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-01", got[0].Label)
	assert.True(t, got[0].Total.Equal(dec("298800")))
	assert.Equal(t, "2024-02", got[1].Label)
	assert.True(t, got[1].Total.Equal(dec("-1500")))
}

func TestTimeSeries_SparseAndChronological(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 12, 31), Amount: dec("-1")},
		{Date: date(2023, 1, 1), Amount: dec("-2")},
		{Date: date(2024, 3, 1), Amount: dec("-3")},
	}

	got := TimeSeries(txns, BucketMonth)
	require.Len(t, got, 3, "empty months in between are omitted")
	assert.Equal(t, "2023-01", got[0].Label)
	assert.Equal(t, "2024-03", got[1].Label)
	assert.Equal(t, "2024-12", got[2].Label)
}

func TestTimeSeries_Year(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2023, 6, 1), Amount: dec("100")},
		{Date: date(2024, 1, 1), Amount: dec("-40")},
		{Date: date(2023, 12, 1), Amount: dec("1")},
	}

	got := TimeSeries(txns, BucketYear)
	require.Len(t, got, 2)
	assert.Equal(t, "2023", got[0].Label)
	assert.True(t, got[0].Total.Equal(dec("101")))
	assert.Equal(t, "2024", got[1].Label)
	assert.True(t, got[1].Total.Equal(dec("-40")))
}

func TestAggregation_EmptyStore(t *testing.T) {
	assert.Empty(t, TotalsByCategory(nil))
	assert.Empty(t, TimeSeries(nil, BucketMonth))

	split := IncomeVsExpense(nil)
	assert.True(t, split.Income.IsZero())
	assert.True(t, split.Expense.IsZero())
}
