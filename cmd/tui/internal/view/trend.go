package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/report"
)

const trendBarWidth = 40

// TrendModel renders a month-by-month income versus expense chart.
type TrendModel struct {
	CommonModel
	ledgerSvc *ledger.Service

	display currency.Code
	palette Palette

	points  []report.MonthlyPoint
	loading bool
	err     error
}

func NewTrendModel(ledgerSvc *ledger.Service, display currency.Code, palette Palette) TrendModel {
	return TrendModel{
		ledgerSvc: ledgerSvc,
		display:   display,
		palette:   palette,
		loading:   true,
	}
}

func (m TrendModel) Title() string { return "Monthly Trend" }

func (m TrendModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m TrendModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TrendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trendLoadedMsg:
		m.loading = false
		m.points = msg.points
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m TrendModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Crunching the numbers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(m.palette.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if len(m.points) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(m.palette.Faint.Render("No transactions yet. Nothing to chart."))
	}

	max := 0.0
	for _, p := range m.points {
		if p.Income > max {
			max = p.Income
		}
		if p.Expense > max {
			max = p.Expense
		}
	}

	var b strings.Builder
	for _, p := range m.points {
		b.WriteString(m.palette.Title.Render(formatPeriod(p.Period)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  in  %s %s\n",
			m.palette.Income.Render(bar(p.Income, max)),
			FormatAmount(p.Income, m.display),
		))
		b.WriteString(fmt.Sprintf("  out %s %s\n\n",
			m.palette.Expense.Render(bar(p.Expense, max)),
			FormatAmount(p.Expense, m.display),
		))
	}

	legend := m.palette.Faint.Render(fmt.Sprintf("Amounts shown in %s", m.display))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, strings.TrimRight(b.String(), "\n"), "", legend),
	)
}

func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}

	n := int(value / max * trendBarWidth)
	if n == 0 && value > 0 {
		n = 1
	}

	return strings.Repeat("█", n)
}

func formatPeriod(period string) string {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return period
	}

	return t.Format("January 2006")
}

type trendLoadedMsg struct {
	points []report.MonthlyPoint
	err    error
}

func (m TrendModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.ledgerSvc.List(ctx)
		if err != nil {
			return trendLoadedMsg{err: err}
		}

		return trendLoadedMsg{points: report.AggregateByMonth(txs, m.display)}
	}
}
