package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/nhasan-dev/finarch/cmd/tui/internal/view"
	"github.com/nhasan-dev/finarch/internal/advice"
	"github.com/nhasan-dev/finarch/internal/category"
	catStore "github.com/nhasan-dev/finarch/internal/category/store"
	"github.com/nhasan-dev/finarch/internal/config"
	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
	ledgerStore "github.com/nhasan-dev/finarch/internal/ledger/store"
	"github.com/nhasan-dev/finarch/internal/prefs"
	"github.com/nhasan-dev/finarch/internal/storage"
)

// Advice is refreshed after every adviceEvery-th recorded transaction.
const adviceEvery = 5

type model struct {
	ledgerSvc *ledger.Service
	registry  *category.Registry
	adviceSvc *advice.Service
	prefsSvc  *prefs.Service

	display currency.Code
	theme   prefs.Theme
	palette view.Palette
	advice  string

	currentView View

	dashboardView   view.DashboardModel
	addView         view.AddModel
	listView        view.ListModel
	trendView       view.TrendModel
	parseView       view.ParseModel
	preferencesView view.PreferencesModel
}

type View int

const (
	ViewMenu        View = 0
	ViewDashboard   View = 1
	ViewAdd         View = 2
	ViewList        View = 3
	ViewTrend       View = 4
	ViewParse       View = 5
	ViewPreferences View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		slog.Error("failed to resolve database path", "error", err)
		os.Exit(1)
	}

	db, err := storage.OpenSQLite(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	registry := category.NewRegistry(catStore.New(db))
	adviceSvc := advice.NewService(advice.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL), cfg.AI.Model)
	prefsSvc := prefs.NewService(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	display, err := prefsSvc.Currency(ctx)
	if err != nil {
		slog.Warn("failed to load currency preference", "error", err)
		display = prefs.DefaultCurrency
	}

	theme, err := prefsSvc.Theme(ctx)
	if err != nil {
		slog.Warn("failed to load theme preference", "error", err)
		theme = prefs.DefaultTheme
	}

	return model{
		ledgerSvc:   ledgerSvc,
		registry:    registry,
		adviceSvc:   adviceSvc,
		prefsSvc:    prefsSvc,
		display:     display,
		theme:       theme,
		palette:     view.NewPalette(theme),
		advice:      advice.Fallback,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.ledgerSvc, m.display, m.palette, m.advice)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.ledgerSvc, m.registry, m.display, m.palette)

				return m, m.addView.Init()
			case "3":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.ledgerSvc, m.registry, m.display, m.palette)

				return m, m.listView.Init()
			case "4":
				m.currentView = ViewTrend
				m.trendView = view.NewTrendModel(m.ledgerSvc, m.display, m.palette)

				return m, m.trendView.Init()
			case "5":
				m.currentView = ViewParse
				m.parseView = view.NewParseModel(m.adviceSvc, m.ledgerSvc, m.registry, m.display, m.palette)

				return m, m.parseView.Init()
			case "6":
				m.currentView = ViewPreferences
				m.preferencesView = view.NewPreferencesModel(m.prefsSvc, m.display, m.theme, m.palette)

				return m, m.preferencesView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.EntrySavedMsg:
		if msg.Err == nil && msg.Count > 0 && msg.Count%adviceEvery == 0 {
			cmd = m.adviceCmd()
		}
	case view.AdviceMsg:
		m.advice = msg.Text
	case view.PrefsSavedMsg:
		if msg.Err == nil {
			m.display = msg.Currency
			m.theme = msg.Theme
			m.palette = view.NewPalette(msg.Theme)
		}
	}

	var viewCmd tea.Cmd

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, viewCmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, viewCmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		var newModel tea.Model
		newModel, viewCmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewTrend:
		var newModel tea.Model
		newModel, viewCmd = m.trendView.Update(msg)
		m.trendView = newModel.(view.TrendModel)
	case ViewParse:
		var newModel tea.Model
		newModel, viewCmd = m.parseView.Update(msg)
		m.parseView = newModel.(view.ParseModel)
	case ViewPreferences:
		var newModel tea.Model
		newModel, viewCmd = m.preferencesView.Update(msg)
		m.preferencesView = newModel.(view.PreferencesModel)
	}

	if cmd != nil {
		return m, tea.Batch(cmd, viewCmd)
	}

	return m, viewCmd
}

func (m model) adviceCmd() tea.Cmd {
	ledgerSvc := m.ledgerSvc
	adviceSvc := m.adviceSvc

	return func() tea.Msg {
		ctx, cancel := view.AICtx()
		defer cancel()

		txs, err := ledgerSvc.List(ctx)
		if err != nil {
			slog.Warn("failed to load transactions for advice", "error", err)
			return view.AdviceMsg{Text: advice.Fallback}
		}

		return view.AdviceMsg{Text: adviceSvc.Advise(ctx, txs)}
	}
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Personal Finance Architect\n\n" +
				"1. Dashboard\n" +
				"2. Record Transaction\n" +
				"3. Browse Transactions\n" +
				"4. Monthly Trend\n" +
				"5. Quick Add (AI)\n" +
				"6. Preferences\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.frame(m.dashboardView)
	case ViewAdd:
		return m.frame(m.addView)
	case ViewList:
		return m.frame(m.listView)
	case ViewTrend:
		return m.frame(m.trendView)
	case ViewParse:
		return m.frame(m.parseView)
	case ViewPreferences:
		return m.frame(m.preferencesView)
	}

	return "Unknown View"
}

type framedView interface {
	tea.Model
	Title() string
	ShortHelp() string
}

func (m model) frame(v framedView) string {
	title := m.palette.Title.Render(v.Title())
	help := m.palette.Faint.Render(v.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(0, 2).Render(title),
		v.View(),
		lipgloss.NewStyle().Padding(0, 2).Render(help),
	)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
