package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/prefs"
)

// PreferencesModel edits the display currency and colour theme.
type PreferencesModel struct {
	CommonModel
	prefsSvc *prefs.Service

	palette Palette
	form    *huh.Form
	saving  bool
	status  string
}

func NewPreferencesModel(prefsSvc *prefs.Service, display currency.Code, theme prefs.Theme, palette Palette) PreferencesModel {
	currencyOpts := make([]huh.Option[string], 0, len(currency.Codes()))
	for _, code := range currency.Codes() {
		d := currency.Lookup(code)
		currencyOpts = append(currencyOpts, huh.NewOption(fmt.Sprintf("%s (%s)", code, d.Label), string(code)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("currency").
				Title("Display currency").
				Description("Stored amounts are unchanged. Only the display converts.").
				Options(currencyOpts...).
				Value(ptr(string(display))),
			huh.NewSelect[string]().
				Key("theme").
				Title("Theme").
				Options(
					huh.NewOption("Dark", string(prefs.ThemeDark)),
					huh.NewOption("Light", string(prefs.ThemeLight)),
				).
				Value(ptr(string(theme))),
		),
	).WithWidth(56).WithShowHelp(false)

	return PreferencesModel{
		prefsSvc: prefsSvc,
		palette:  palette,
		form:     form,
	}
}

func ptr[T any](v T) *T { return &v }

func (m PreferencesModel) Title() string { return "Preferences" }

func (m PreferencesModel) ShortHelp() string { return "Esc: back" }

func (m PreferencesModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m PreferencesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PrefsSavedMsg:
		m.saving = false

		if msg.Err != nil {
			m.status = fmt.Sprintf("Error saving preferences: %v", msg.Err)
		} else {
			m.status = "Preferences saved."
			m.palette = NewPalette(msg.Theme)
		}

		return m, nil

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

func (m PreferencesModel) View() string {
	body := m.form.View()
	if m.saving {
		body = "Saving..."
	}

	if m.status != "" {
		body = m.palette.Faint.Render(m.status) + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (m PreferencesModel) saveCmd() tea.Cmd {
	code := currency.Code(m.form.GetString("currency"))
	theme := prefs.Theme(m.form.GetString("theme"))
	prefsSvc := m.prefsSvc

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if err := prefsSvc.SetCurrency(ctx, code); err != nil {
			return PrefsSavedMsg{Err: err}
		}

		if err := prefsSvc.SetTheme(ctx, theme); err != nil {
			return PrefsSavedMsg{Err: err}
		}

		return PrefsSavedMsg{Currency: code, Theme: theme}
	}
}
