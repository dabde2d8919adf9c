package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/http/httputil"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

type Handler struct {
	svc      *ledger.Service
	registry *category.Registry
}

func NewHandler(svc *ledger.Service, registry *category.Registry) *Handler {
	return &Handler{svc: svc, registry: registry}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Kind        ledger.Kind       `json:"kind"`
	Amount      float64           `json:"amount"`
	Recurrence  ledger.Recurrence `json:"recurrence"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	display := httputil.DisplayCurrency(r)

	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = ledger.RecurrenceNone
	}

	if err := h.registry.Ensure(r.Context(), req.Kind, req.Category); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tx, err := h.svc.Add(r.Context(), ledger.AddParams{
		Description: req.Description,
		Category:    req.Category,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Display:     display,
		Recurrence:  recurrence,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidEntry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx, display)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs, httputil.DisplayCurrency(r))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx, httputil.DisplayCurrency(r))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	Description *string            `json:"description,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Kind        *ledger.Kind       `json:"kind,omitempty"`
	Amount      *float64           `json:"amount,omitempty"`
	Recurrence  *ledger.Recurrence `json:"recurrence,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	display := httputil.DisplayCurrency(r)

	if req.Category != nil {
		kind := existing.Kind
		if req.Kind != nil {
			kind = *req.Kind
		}

		if err := h.registry.Ensure(r.Context(), kind, *req.Category); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	err = h.svc.Update(r.Context(), id, ledger.UpdateParams{
		Description: req.Description,
		Category:    req.Category,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Display:     display,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidEntry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx, display)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
