package category

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

type Handler struct {
	registry *category.Registry
}

func NewHandler(registry *category.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{kind}", h.list)
	r.Post("/{kind}", h.ensure)
}

func kindParam(r *http.Request) (ledger.Kind, bool) {
	kind := ledger.Kind(strings.ToUpper(chi.URLParam(r, "kind")))
	return kind, kind == ledger.KindIncome || kind == ledger.KindExpense
}

type labelsResponse struct {
	Kind   ledger.Kind `json:"kind"`
	Labels []string    `json:"labels"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		http.Error(w, "unknown kind", http.StatusBadRequest)
		return
	}

	labels, err := h.registry.ListFor(r.Context(), kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(labelsResponse{Kind: kind, Labels: labels}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type ensureRequest struct {
	Label string `json:"label"`
}

func (h *Handler) ensure(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		http.Error(w, "unknown kind", http.StatusBadRequest)
		return
	}

	var req ensureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.registry.Ensure(r.Context(), kind, req.Label); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	labels, err := h.registry.ListFor(r.Context(), kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(labelsResponse{Kind: kind, Labels: labels}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
