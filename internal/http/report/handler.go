package report

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/http/httputil"
	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/report"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/trend", h.trend)
}

type summaryResponse struct {
	TotalIncome   float64       `json:"total_income"`
	TotalExpenses float64       `json:"total_expenses"`
	NetBalance    float64       `json:"net_balance"`
	Currency      currency.Code `json:"currency"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	display := httputil.DisplayCurrency(r)
	s := report.Summarize(txs, display)

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(summaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		NetBalance:    s.NetBalance,
		Currency:      display,
	})
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type trendResponse struct {
	Currency currency.Code         `json:"currency"`
	Points   []report.MonthlyPoint `json:"points"`
}

func (h *Handler) trend(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	display := httputil.DisplayCurrency(r)

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(trendResponse{
		Currency: display,
		Points:   report.AggregateByMonth(txs, display),
	})
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
