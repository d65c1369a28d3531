package query

import (
	"github.com/shopspring/decimal"

	"github.com/budget-tracker-dev/budget-tracker/internal/ledger"
	"github.com/budget-tracker-dev/budget-tracker/internal/model"
	"github.com/budget-tracker-dev/budget-tracker/internal/report"
	"github.com/budget-tracker-dev/budget-tracker/internal/search"
)

// Engine answers search and dashboard queries against one Store. It holds
// no state of its own and never mutates the Store.
type Engine struct {
	store *ledger.Store
}

// NewEngine creates an Engine over store.
func NewEngine(store *ledger.Store) *Engine {
	return &Engine{store: store}
}

// Search returns the transactions matching query in relevance order.
func (e *Engine) Search(query string) []model.Transaction {
	return search.Search(e.store.All(), query)
}

// Dashboard bundles every aggregate view a single render pass needs.
type Dashboard struct {
	CategoryTotals []report.CategoryTotal
	NetBalance     decimal.Decimal
	IncomeExpense  report.IncomeExpense
	Monthly        []report.BucketTotal
}

// DashboardData recomputes all four aggregate views from the current
// Store contents.
func (e *Engine) DashboardData() Dashboard {
	txns := e.store.All()
	return Dashboard{
		CategoryTotals: report.TotalsByCategory(txns),
		NetBalance:     report.NetBalance(txns),
		IncomeExpense:  report.IncomeVsExpense(txns),
		Monthly:        report.TimeSeries(txns, report.BucketMonth),
	}
}
