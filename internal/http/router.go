package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nhasan-dev/finarch/internal/http/advice"
	"github.com/nhasan-dev/finarch/internal/http/category"
	"github.com/nhasan-dev/finarch/internal/http/report"
	"github.com/nhasan-dev/finarch/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	categoriesV1 *category.Handler,
	reportsV1 *report.Handler,
	adviceV1 *advice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			categoriesV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})

		r.Route("/advice", func(r chi.Router) {
			adviceV1.Routes(r)
		})
	})

	return router
}
