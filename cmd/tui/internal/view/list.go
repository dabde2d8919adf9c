package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateEdit
	listStateConfirmDelete
)

var kindFilters = []struct {
	label string
	kind  ledger.Kind
}{
	{label: "All"},
	{label: "Income", kind: ledger.KindIncome},
	{label: "Expense", kind: ledger.KindExpense},
}

// ListModel browses the ledger with a kind filter, inline editing, and
// delete-with-confirmation.
type ListModel struct {
	CommonModel
	ledgerSvc *ledger.Service
	registry  *category.Registry

	display currency.Code
	palette Palette

	state     listState
	table     table.Model
	txs       []*ledger.Transaction
	visible   []*ledger.Transaction
	filterIdx int

	form     *huh.Form
	fields   *entryForm
	selected *ledger.Transaction

	loading bool
	err     error
	status  string
}

func NewListModel(ledgerSvc *ledger.Service, registry *category.Registry, display currency.Code, palette Palette) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Kind", Width: 8},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 15},
		{Title: "Cycle", Width: 9},
		{Title: "Description", Width: 32},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		ledgerSvc: ledgerSvc,
		registry:  registry,
		display:   display,
		palette:   palette,
		table:     t,
		loading:   true,
	}
}

func (m ListModel) Title() string { return "Transactions" }

func (m ListModel) ShortHelp() string {
	switch m.state {
	case listStateEdit:
		return "Navigate form | Esc: cancel"
	case listStateConfirmDelete:
		return "Confirm deletion"
	}

	return "Esc: back | e: edit | x: delete | f: filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case listSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case listDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = "Deleted."
		}

		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case listStateBrowse:
		return m.updateBrowse(msg)
	case listStateEdit:
		return m.updateEdit(msg)
	case listStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(kindFilters)
			m.refreshTable()

			return m, nil
		case "e":
			return m.enterEditMode()
		case "x":
			return m.enterConfirmDelete()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) selectedTx() *ledger.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}

	return m.visible[idx]
}

func (m ListModel) enterEditMode() (tea.Model, tea.Cmd) {
	tx := m.selectedTx()
	if tx == nil {
		return m, nil
	}

	m.selected = tx
	m.fields = &entryForm{
		Kind:        string(tx.Kind),
		Amount:      fmt.Sprintf("%.2f", currency.FromBase(tx.Amount, m.display)),
		Description: tx.Description,
		Category:    tx.Category,
		Recurrence:  recurrenceLabel(tx.Recurrence),
	}
	m.form = newEntryForm(m.registry, m.display, m.fields)
	m.state = listStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = listStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m ListModel) enterConfirmDelete() (tea.Model, tea.Cmd) {
	tx := m.selectedTx()
	if tx == nil {
		return m, nil
	}

	m.selected = tx
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %q (%s)? This cannot be undone.", tx.Description, FormatMoney(tx.Amount, m.display))).
				Affirmative("Delete").
				Negative("Keep"),
		),
	).WithWidth(60).WithShowHelp(false)
	m.state = listStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = listStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.GetBool("confirm") {
		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.deleteCmd()
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(m.palette.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf(
		"Filter: [f] %s | Currency: %s",
		m.palette.Accent.Render(kindFilters[m.filterIdx].label),
		m.display,
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.form != nil && m.state != listStateBrowse {
		title := "Edit Transaction"
		if m.state == listStateConfirmDelete {
			title = "Delete Transaction"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(56).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = m.palette.Faint.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func kindLabel(k ledger.Kind) string {
	if k == ledger.KindIncome {
		return "Income"
	}

	return "Expense"
}

func (m *ListModel) refreshTable() {
	filter := kindFilters[m.filterIdx]
	m.visible = m.visible[:0]

	for _, tx := range m.txs {
		if filter.kind != "" && tx.Kind != filter.kind {
			continue
		}

		m.visible = append(m.visible, tx)
	}

	rows := make([]table.Row, 0, len(m.visible))
	for _, tx := range m.visible {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			kindLabel(tx.Kind),
			FormatMoney(tx.Amount, m.display),
			tx.Category,
			recurrenceLabel(tx.Recurrence),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Messages

type listLoadedMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m ListModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.ledgerSvc.List(ctx)

		return listLoadedMsg{txs: txs, err: err}
	}
}

type listSavedMsg struct {
	err error
}

func (m ListModel) saveCmd() tea.Cmd {
	tx := m.selected
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
			return listSavedMsg{err: fmt.Errorf("parsing amount: %w", err)}
		}

		if err := registry.Ensure(ctx, kind, cat); err != nil {
			return listSavedMsg{err: err}
		}

		err = ledgerSvc.Update(ctx, tx.ID, ledger.UpdateParams{
			Description: &desc,
			Category:    &cat,
			Kind:        &kind,
			Amount:      &amount,
			Display:     display,
			Recurrence:  &recurrence,
		})

		return listSavedMsg{err: err}
	}
}

type listDeletedMsg struct {
	err error
}

func (m ListModel) deleteCmd() tea.Cmd {
	id := m.selected.ID
	ledgerSvc := m.ledgerSvc

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		return listDeletedMsg{err: ledgerSvc.Delete(ctx, id)}
	}
}
