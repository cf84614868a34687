package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/export"
	aeroHttp "github.com/MrJamesThe3rd/aerooffers/internal/http"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/classify"
	exportHandler "github.com/MrJamesThe3rd/aerooffers/internal/http/export"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/importcsv"
	offerHandler "github.com/MrJamesThe3rd/aerooffers/internal/http/offer"
	"github.com/MrJamesThe3rd/aerooffers/internal/importer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	svc := offer.NewService(offer.NewMockRepository(ctrl), offer.NewMockClassifier(ctrl), 0)

	return aeroHttp.New(
		classify.NewHandler(classifier.New(cat), cat),
		offerHandler.NewHandler(svc),
		importcsv.NewHandler(importer.NewService(), svc),
		exportHandler.NewHandler(export.NewService(svc)),
	)
}

func TestRouter_Classify(t *testing.T) {
	router := newRouter(t)

	body := `{"offers":[{"id":"1","title":"ASH 25 Mi","category":"glider"}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"results":{"1":{"manufacturer":"Alexander Schleicher","model":"ASH 25 Mi","category":"glider"}}}`,
		rec.Body.String(),
	)
}

func TestRouter_RejectsNonJSON(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader("title=LS8"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/classify", nil)
	req.Header.Set("Origin", "https://aerooffers.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://aerooffers.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
