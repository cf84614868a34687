package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/aerooffers/internal/http/classify"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/export"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/importcsv"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/offer"
)

func New(
	classifyV1 *classify.Handler,
	offersV1 *offer.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			classifyV1.Routes(r)
		})

		r.Route("/offers", offersV1.Routes)
		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
