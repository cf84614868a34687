package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aerooffers/internal/export"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Get("/download", h.download)
}

type summaryResponse struct {
	Offers  int    `json:"offers"`
	Summary string `json:"summary"`
}

// parseFilter reads the optional classified and limit query parameters.
func parseFilter(r *http.Request) (offer.ListFilter, error) {
	var filter offer.ListFilter

	q := r.URL.Query()

	if s := q.Get("classified"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return filter, fmt.Errorf("invalid classified: %q", s)
		}

		filter.Classified = &b
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("invalid limit: %q", s)
		}

		filter.Limit = n
	}

	return filter, nil
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer

	offers, err := h.svc.Export(r.Context(), filter, &buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		Offers:  len(offers),
		Summary: h.svc.GenerateSummary(offers),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer

	if _, err := h.svc.Export(r.Context(), filter, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"offers_%s.csv\"", time.Now().Format("20060102")))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
