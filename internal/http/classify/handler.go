package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

// maxOffers bounds a single classify request.
const maxOffers = 1000

type Handler struct {
	classifier *classifier.Classifier
	catalog    *catalog.Catalog
}

func NewHandler(c *classifier.Classifier, cat *catalog.Catalog) *Handler {
	return &Handler{classifier: c, catalog: cat}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/classify", h.classify)
	r.Get("/catalog", h.getCatalog)
}

type offerRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type classifyRequest struct {
	Offers []offerRequest `json:"offers"`
}

type resultResponse struct {
	Manufacturer *string `json:"manufacturer"`
	Model        *string `json:"model"`
	Category     *string `json:"category"`
}

type classifyResponse struct {
	Results map[string]resultResponse `json:"results"`
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	offers, err := toUnclassified(req.Offers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := h.classifier.ClassifyMany(offers)

	resp := classifyResponse{Results: make(map[string]resultResponse, len(results))}
	for id, result := range results {
		resp.Results[id] = toResultResponse(result)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toUnclassified(reqs []offerRequest) ([]offer.UnclassifiedOffer, error) {
	if len(reqs) > maxOffers {
		return nil, fmt.Errorf("too many offers: %d, at most %d per request", len(reqs), maxOffers)
	}

	seen := make(map[string]struct{}, len(reqs))
	offers := make([]offer.UnclassifiedOffer, 0, len(reqs))

	for _, o := range reqs {
		if o.ID == "" {
			return nil, errors.New("offer id is required")
		}

		if _, dup := seen[o.ID]; dup {
			return nil, fmt.Errorf("duplicate offer id %q", o.ID)
		}

		seen[o.ID] = struct{}{}

		var category catalog.Category

		if o.Category != "" {
			c, err := catalog.ParseCategory(o.Category)
			if err != nil {
				return nil, fmt.Errorf("offer %q: %w", o.ID, err)
			}

			category = c
		}

		offers = append(offers, offer.UnclassifiedOffer{ID: o.ID, Title: o.Title, Category: category})
	}

	return offers, nil
}

func toResultResponse(result offer.ClassificationResult) resultResponse {
	var resp resultResponse

	if !result.IsUnknown() {
		resp.Manufacturer = new(result.Manufacturer)
		resp.Model = new(result.Model)
	}

	if result.Category != "" {
		resp.Category = new(string(result.Category))
	}

	return resp
}

type manufacturerResponse struct {
	Name    string              `json:"name"`
	Aliases []string            `json:"aliases,omitempty"`
	Models  map[string][]string `json:"models"`
}

func (h *Handler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	manufacturers := h.catalog.Manufacturers()

	resp := make([]manufacturerResponse, 0, len(manufacturers))
	for _, m := range manufacturers {
		models := make(map[string][]string, len(m.Models))
		for category, names := range m.Models {
			models[string(category)] = names
		}

		resp = append(resp, manufacturerResponse{Name: m.Name, Aliases: m.Aliases, Models: models})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
