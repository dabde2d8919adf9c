package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

// AddModel records a new transaction via the entry form.
type AddModel struct {
	CommonModel
	ledgerSvc *ledger.Service
	registry  *category.Registry

	display currency.Code
	palette Palette

	form   *huh.Form
	fields *entryForm
	saving bool
	status string
}

func NewAddModel(ledgerSvc *ledger.Service, registry *category.Registry, display currency.Code, palette Palette) AddModel {
	fields := &entryForm{
		Kind:       string(ledger.KindExpense),
		Recurrence: recurrenceOnce,
	}

	return AddModel{
		ledgerSvc: ledgerSvc,
		registry:  registry,
		display:   display,
		palette:   palette,
		form:      newEntryForm(registry, display, fields),
		fields:    fields,
	}
}

func (m AddModel) Title() string { return "New Transaction" }

func (m AddModel) ShortHelp() string {
	return "Esc: back | Enter/Tab: navigate form"
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntrySavedMsg:
		m.saving = false

		if msg.Err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("Recorded %s.", msg.Tx.Description)
		}

		// Fresh form for the next entry.
		m.fields = &entryForm{Kind: m.fields.Kind, Recurrence: recurrenceOnce}
		m.form = newEntryForm(m.registry, m.display, m.fields)

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.saving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.saving = true

	return m, m.saveCmd()
}

func (m AddModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(1).Render("Saving...")
	}

	body := m.form.View()
	if m.status != "" {
		body = m.palette.Faint.Render(m.status) + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

func (m AddModel) saveCmd() tea.Cmd {
	kind := ledger.Kind(m.form.GetString("kind"))
	amountRaw := m.form.GetString("amount")
	desc := m.form.GetString("description")
	cat := resolveCategory(m.form.GetString("category"), m.form.GetString("new_label"))
	recurrence := recurrenceFromLabel(m.form.GetString("recurrence"))
	display := m.display

	ledgerSvc := m.ledgerSvc
	registry := m.registry

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		amount, err := strconv.ParseFloat(strings.TrimSpace(amountRaw), 64)
		if err != nil {
			return EntrySavedMsg{Err: fmt.Errorf("parsing amount: %w", err)}
		}

		// The label is registered before the entry is written.
		if err := registry.Ensure(ctx, kind, cat); err != nil {
			return EntrySavedMsg{Err: err}
		}

		tx, err := ledgerSvc.Add(ctx, ledger.AddParams{
			Description: desc,
			Category:    cat,
			Kind:        kind,
			Amount:      amount,
			Display:     display,
			Recurrence:  recurrence,
		})
		if err != nil {
			return EntrySavedMsg{Err: err}
		}

		count, err := ledgerSvc.Count(ctx)
		if err != nil {
			count = 0
		}

		return EntrySavedMsg{Tx: tx, Count: count}
	}
}
