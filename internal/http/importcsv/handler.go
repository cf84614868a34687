package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aerooffers/internal/importer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
	offerSvc  *offer.Service
}

func NewHandler(importSvc *importer.Service, offerSvc *offer.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		offerSvc:  offerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Parsed   int `json:"parsed"`
	Imported int `json:"imported"`
}

// importCSV stores the offers of an uploaded feed file. The multipart form
// carries the file under "file" and an optional "format".
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	offers, err := h.importSvc.Import(importer.Format(r.FormValue("format")), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.offerSvc.Import(r.Context(), offers)
	if err != nil {
		slog.Error("failed to store imported offers", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Parsed: len(offers), Imported: n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
