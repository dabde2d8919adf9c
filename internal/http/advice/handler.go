package advice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhasan-dev/finarch/internal/advice"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

type Handler struct {
	svc       *advice.Service
	ledgerSvc *ledger.Service
}

func NewHandler(svc *advice.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{svc: svc, ledgerSvc: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.advise)
	r.Post("/parse", h.parse)
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

func (h *Handler) advise(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledgerSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(adviceResponse{Advice: h.svc.Advise(r.Context(), txs)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Parse(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, advice.ErrUnavailable) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(entry); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
