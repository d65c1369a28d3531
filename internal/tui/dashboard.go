// Package tui renders the dashboard: a scrollable transaction table next
// to the aggregate views (net balance, income vs expense, per-category
// bars). All numbers come precomputed from the query engine; this package
// only draws them.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
	"github.com/budget-tracker-dev/budget-tracker/internal/query"
	"github.com/budget-tracker-dev/budget-tracker/internal/report"
)

var (
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	expenseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	incomeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	txns   []model.Transaction // newest first, for display only
	dash   query.Dashboard
	filter string // active search query, empty when showing everything

	cursor int
	width  int
	height int
}

// New builds the dashboard model. txns is the sequence to list (already
// filtered when a search is active); the stored order is not touched,
// the display copy is sorted newest first. filter labels the table title.
func New(txns []model.Transaction, dash query.Dashboard, filter string) Model {
	display := make([]model.Transaction, len(txns))
	copy(display, txns)
	sort.SliceStable(display, func(i, j int) bool {
		return display[i].Date.After(display[j].Date)
	})

	return Model{txns: display, dash: dash, filter: filter, width: 80, height: 24}
}

// Run starts the dashboard in the alternate screen and blocks until the
// user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j", "s":
			if len(m.txns) > 0 {
				m.cursor = (m.cursor + 1) % len(m.txns)
			}
		case "up", "k", "w":
			if len(m.txns) > 0 {
				m.cursor = (m.cursor - 1 + len(m.txns)) % len(m.txns)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth

	left := paneStyle.Width(leftWidth - 2).Render(m.renderTable(leftWidth-4, m.height-4))
	right := lipgloss.JoinVertical(
		lipgloss.Left,
		paneStyle.Width(rightWidth-2).Render(m.renderTotals()),
		paneStyle.Width(rightWidth-2).Render(m.renderBars(rightWidth-4)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderTable(width, height int) string {
	title := "Transactions"
	if m.filter != "" {
		title = fmt.Sprintf("Transactions matching %q", m.filter)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(tableRow(width, "Date", "Description", "Category", "Amount")))
	b.WriteString("\n")

	if len(m.txns) == 0 {
		b.WriteString("no transactions")
		return b.String()
	}

	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}

	for i := start; i < len(m.txns) && i < start+rows; i++ {
		txn := m.txns[i]
		line := tableRow(width, txn.Date.Format("2006-01-02"), txn.Description, txn.Category, txn.Amount.String())
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i != len(m.txns)-1 && i != start+rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// tableRow lays out the four columns inside width, truncating the
// description rather than wrapping.
func tableRow(width int, date, desc, category, amount string) string {
	descWidth := width - 12 - 14 - 10 - 3
	if descWidth < 8 {
		descWidth = 8
	}
	return fmt.Sprintf("%-12s %-*s %-14s %10s",
		date,
		descWidth, ansi.Truncate(desc, descWidth, "…"),
		ansi.Truncate(category, 14, "…"),
		amount,
	)
}

func (m Model) renderTotals() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Balance"))
	b.WriteString("\n")

	net := m.dash.NetBalance.String()
	if m.dash.NetBalance.IsNegative() {
		net = negativeStyle.Render(net)
	}
	fmt.Fprintf(&b, "%-14s %s\n", "Net balance", net)
	fmt.Fprintf(&b, "%-14s %s\n", "Total earned", m.dash.IncomeExpense.Income.String())
	fmt.Fprintf(&b, "%-14s %s", "Total spent", m.dash.IncomeExpense.Expense.String())
	return b.String()
}

func (m Model) renderBars(width int) string {
	var spent, earned []report.CategoryTotal
	for _, ct := range m.dash.CategoryTotals {
		if ct.Total.IsNegative() {
			spent = append(spent, report.CategoryTotal{Category: ct.Category, Total: ct.Total.Neg()})
		} else {
			earned = append(earned, ct)
		}
	}

	sections := []string{
		renderBarChart("Expenditure", spent, width, expenseStyle),
		"",
		renderBarChart("Income", earned, width, incomeStyle),
	}
	return strings.Join(sections, "\n")
}

// renderBarChart draws one horizontal bar per category, scaled to the
// largest total in the group.
func renderBarChart(title string, groups []report.CategoryTotal, width int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))

	if len(groups) == 0 {
		b.WriteString("\n(nothing here yet)")
		return b.String()
	}

	max := 0.0
	for _, g := range groups {
		if v, _ := g.Total.Float64(); v > max {
			max = v
		}
	}

	labelWidth := 10
	barSpace := width - labelWidth - 12
	if barSpace < 4 {
		barSpace = 4
	}

	for _, g := range groups {
		v, _ := g.Total.Float64()
		bar := strings.Repeat("█", scaleBar(v, max, barSpace))
		fmt.Fprintf(&b, "\n%-*s %s %s",
			labelWidth, ansi.Truncate(g.Category, labelWidth, "…"),
			style.Render(bar),
			g.Total.String(),
		)
	}
	return b.String()
}

// scaleBar maps value into 1..width proportionally to max. Any non-zero
// value gets at least one cell so small categories stay visible.
func scaleBar(value, max float64, width int) int {
	if max <= 0 || value <= 0 || width < 1 {
		return 0
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
