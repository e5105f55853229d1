package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shopsaathi/saathi/internal/http/dataset"
	"github.com/shopsaathi/saathi/internal/http/insight"
	"github.com/shopsaathi/saathi/internal/http/kpis"
	"github.com/shopsaathi/saathi/internal/http/report"
)

func New(
	datasetsV1 *dataset.Handler,
	kpisV1 *kpis.Handler,
	insightsV1 *insight.Handler,
	reportV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/datasets", datasetsV1.Routes)

		r.Route("/kpis", kpisV1.Routes)

		r.Route("/insights", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			insightsV1.Routes(r)
		})

		r.Route("/report", reportV1.Routes)
	})

	return router
}
