package offer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

type Handler struct {
	svc *offer.Service
}

func NewHandler(svc *offer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/classify", h.classifyPending)
	r.Post("/reset-failed", h.resetFailed)
	r.Get("/{id}", h.get)
}

type offerResponse struct {
	ID             string           `json:"id"`
	URL            string           `json:"url,omitempty"`
	Title          string           `json:"title"`
	Category       catalog.Category `json:"category,omitempty"`
	Classified     bool             `json:"classified"`
	Manufacturer   *string          `json:"manufacturer"`
	Model          *string          `json:"model"`
	ClassifierName *string          `json:"classifier_name,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	ClassifiedAt   *time.Time       `json:"classified_at,omitempty"`
}

func toResponse(o *offer.Offer) offerResponse {
	return offerResponse{
		ID:             o.ID,
		URL:            o.URL,
		Title:          o.Title,
		Category:       o.Category,
		Classified:     o.Classified,
		Manufacturer:   o.Manufacturer,
		Model:          o.Model,
		ClassifierName: o.ClassifierName,
		CreatedAt:      o.CreatedAt,
		ClassifiedAt:   o.ClassifiedAt,
	}
}

type classifyResponse struct {
	Processed int `json:"processed"`
}

func (h *Handler) classifyPending(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ClassifyPending(r.Context())
	if err != nil {
		slog.Error("classification job failed", "processed", n, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, classifyResponse{Processed: n})
}

type resetResponse struct {
	Reset int64 `json:"reset"`
}

func (h *Handler) resetFailed(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	n, err := h.svc.ResetFailed(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, resetResponse{Reset: n})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toResponse(o))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
