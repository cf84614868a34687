package classify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/classify"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	r := chi.NewRouter()
	classify.NewHandler(classifier.New(cat), cat).Routes(r)

	return r
}

func TestHandler_Classify(t *testing.T) {
	type testCase struct {
		name       string
		body       string
		wantStatus int
		verify     func(t *testing.T, body string)
	}

	tests := []testCase{
		{
			name: "Success",
			body: `{"offers":[
				{"id":"1","title":"Stemme S6-RT","category":"tmg"},
				{"id":"2","title":"Zlin Z-9999 Fantasy","category":"airplane"},
				{"id":"3","title":"Cessna Skyhawk Projekt"},
				{"id":"4","title":"Wunderschöner G109b","category":"Motorsegler"}
			]}`,
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body string) {
				var resp struct {
					Results map[string]map[string]*string `json:"results"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				require.Len(t, resp.Results, 4)

				assert.Equal(t, "Stemme", *resp.Results["1"]["manufacturer"])
				assert.Equal(t, "S6-RT", *resp.Results["1"]["model"])
				assert.Equal(t, "tmg", *resp.Results["1"]["category"])

				assert.Nil(t, resp.Results["2"]["manufacturer"])
				assert.Nil(t, resp.Results["2"]["model"])
				assert.Nil(t, resp.Results["2"]["category"])

				assert.Nil(t, resp.Results["3"]["model"])
				assert.Equal(t, "airplane", *resp.Results["3"]["category"])

				assert.Equal(t, "G109b", *resp.Results["4"]["model"])
			},
		},
		{
			name:       "Null fields are present",
			body:       `{"offers":[{"id":"x","title":"","category":"glider"}]}`,
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"results":{"x":{"manufacturer":null,"model":null,"category":null}}}`, body)
			},
		},
		{
			name:       "Unknown category",
			body:       `{"offers":[{"id":"1","title":"LS8","category":"spaceship"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Missing id",
			body:       `{"offers":[{"title":"LS8"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Duplicate id",
			body:       `{"offers":[{"id":"1","title":"LS8"},{"id":"1","title":"LS6"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed body",
			body:       `{"offers":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	router := newRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.verify != nil {
				tt.verify(t, rec.Body.String())
			}
		})
	}
}

func TestHandler_Catalog(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Name   string              `json:"name"`
		Models map[string][]string `json:"models"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp)

	assert.Equal(t, "Alexander Schleicher", resp[0].Name)
	assert.Contains(t, resp[0].Models["glider"], "ASK 21")
}
