package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/report"
)

// DashboardModel shows the headline totals and the latest advice blurb.
type DashboardModel struct {
	CommonModel
	ledgerSvc *ledger.Service

	display currency.Code
	palette Palette
	advice  string

	summary report.Summary
	count   int
	loading bool
	err     error
}

func NewDashboardModel(ledgerSvc *ledger.Service, display currency.Code, palette Palette, advice string) DashboardModel {
	return DashboardModel{
		ledgerSvc: ledgerSvc,
		display:   display,
		palette:   palette,
		advice:    advice,
		loading:   true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary
		m.count = msg.count

		return m, nil

	case AdviceMsg:
		m.advice = msg.Text
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

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(m.palette.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	balanceStyle := m.palette.Income
	if m.summary.NetBalance < 0 {
		balanceStyle = m.palette.Expense
	}

	balance := m.palette.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.palette.Faint.Render(fmt.Sprintf("Balance (%s)", m.display)),
		balanceStyle.Bold(true).Render(FormatAmount(m.summary.NetBalance, m.display)),
	))

	inflow := m.palette.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.palette.Faint.Render("Inflow"),
		m.palette.Income.Render("+"+FormatAmount(m.summary.TotalIncome, m.display)),
	))

	outflow := m.palette.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.palette.Faint.Render("Outflow"),
		m.palette.Expense.Render("-"+FormatAmount(m.summary.TotalExpenses, m.display)),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, balance, " ", inflow, " ", outflow),
		"",
		m.palette.Faint.Render(fmt.Sprintf("%d transactions on record", m.count)),
	)

	if m.advice != "" {
		panel := m.palette.Card.
			BorderForeground(lipgloss.Color("205")).
			Width(60).
			Render(m.palette.Accent.Render("Architect's Council") + "\n" + m.advice)
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type dashboardLoadedMsg struct {
	summary report.Summary
	count   int
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	display := m.display

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.ledgerSvc.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			summary: report.Summarize(txs, display),
			count:   len(txs),
		}
	}
}
