package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/advice"
	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

type parseState int

const (
	parseStateInput parseState = iota
	parseStateWaiting
	parseStateReview
	parseStateSaving
)

// ParseModel turns a plain-English sentence into a ledger entry via the
// advice service, with a review step before anything is written.
type ParseModel struct {
	CommonModel
	adviceSvc *advice.Service
	ledgerSvc *ledger.Service
	registry  *category.Registry

	display currency.Code
	palette Palette

	state   parseState
	form    *huh.Form
	spinner spinner.Model

	input  string
	parsed advice.ParsedEntry
	status string
}

func NewParseModel(adviceSvc *advice.Service, ledgerSvc *ledger.Service, registry *category.Registry, display currency.Code, palette Palette) ParseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	m := ParseModel{
		adviceSvc: adviceSvc,
		ledgerSvc: ledgerSvc,
		registry:  registry,
		display:   display,
		palette:   palette,
		spinner:   sp,
	}
	m.form = m.inputForm()

	return m
}

func (m ParseModel) Title() string { return "Quick Add" }

func (m ParseModel) ShortHelp() string {
	switch m.state {
	case parseStateWaiting, parseStateSaving:
		return "Working..."
	case parseStateReview:
		return "Confirm to save | Esc: discard"
	}

	return "Describe a transaction in plain English | Esc: back"
}

func (m ParseModel) inputForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("text").
				Title("What happened?").
				Placeholder("spent 42.50 on groceries at the market").
				CharLimit(280).
				Lines(3),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ParseModel) reviewForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Save this entry?").
				Affirmative("Save").
				Negative("Discard"),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ParseModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.spinner.Tick)
}

func (m ParseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case parseResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not make sense of that: %v", msg.err)
			m.state = parseStateInput
			m.form = m.inputForm()

			return m, m.form.Init()
		}

		m.parsed = msg.entry
		m.state = parseStateReview
		m.form = m.reviewForm()

		return m, m.form.Init()

	case EntrySavedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("Error saving entry: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("Recorded %s (%s).", msg.Tx.Description, FormatMoney(msg.Tx.Amount, m.display))
		}

		m.state = parseStateInput
		m.form = m.inputForm()

		return m, m.form.Init()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == parseStateReview {
				m.state = parseStateInput
				m.form = m.inputForm()
				m.status = "Discarded."

				return m, m.form.Init()
			}

			if m.state == parseStateInput {
				return m, Back
			}

			return m, nil
		}
	}

	if m.state == parseStateWaiting || m.state == parseStateSaving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case parseStateInput:
		m.input = m.form.GetString("text")
		if m.input == "" {
			m.form = m.inputForm()
			return m, m.form.Init()
		}

		m.state = parseStateWaiting
		m.status = ""

		return m, tea.Batch(m.parseCmd(m.input), m.spinner.Tick)

	case parseStateReview:
		if !m.form.GetBool("confirm") {
			m.state = parseStateInput
			m.form = m.inputForm()
			m.status = "Discarded."

			return m, m.form.Init()
		}

		m.state = parseStateSaving

		return m, tea.Batch(m.saveCmd(m.parsed), m.spinner.Tick)
	}

	return m, cmd
}

func (m ParseModel) View() string {
	var body string

	switch m.state {
	case parseStateWaiting:
		body = fmt.Sprintf("%s Consulting the Architect...", m.spinner.View())
	case parseStateSaving:
		body = fmt.Sprintf("%s Saving...", m.spinner.View())
	case parseStateReview:
		summary := lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("Description: %s", m.parsed.Description),
			fmt.Sprintf("Amount:      %s %s", FormatAmount(m.parsed.Amount, m.display), m.display),
			fmt.Sprintf("Kind:        %s", kindLabel(m.parsed.Kind)),
			fmt.Sprintf("Category:    %s", m.parsed.Category),
		)

		card := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(summary)

		body = lipgloss.JoinVertical(lipgloss.Left, card, "", m.form.View())
	default:
		body = m.form.View()
	}

	if m.status != "" {
		body = m.palette.Faint.Render(m.status) + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

type parseResultMsg struct {
	entry advice.ParsedEntry
	err   error
}

func (m ParseModel) parseCmd(text string) tea.Cmd {
	adviceSvc := m.adviceSvc

	return func() tea.Msg {
		ctx, cancel := AICtx()
		defer cancel()

		entry, err := adviceSvc.Parse(ctx, text)
		if err != nil {
			return parseResultMsg{err: err}
		}

		return parseResultMsg{entry: *entry}
	}
}

func (m ParseModel) saveCmd(entry advice.ParsedEntry) tea.Cmd {
	ledgerSvc := m.ledgerSvc
	registry := m.registry
	display := m.display

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if err := registry.Ensure(ctx, entry.Kind, entry.Category); err != nil {
			return EntrySavedMsg{Err: err}
		}

		tx, err := ledgerSvc.Add(ctx, ledger.AddParams{
			Description: entry.Description,
			Category:    entry.Category,
			Kind:        entry.Kind,
			Amount:      entry.Amount,
			Display:     display,
			Recurrence:  ledger.RecurrenceNone,
		})
		if err != nil {
			return EntrySavedMsg{Err: err}
		}

		count, err := ledgerSvc.Count(ctx)
		if err != nil {
			return EntrySavedMsg{Tx: tx, Err: err}
		}

		return EntrySavedMsg{Tx: tx, Count: count}
	}
}
