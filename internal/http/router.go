package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	contracth "github.com/benchlane/benchlane/internal/http/contract"
	invoiceh "github.com/benchlane/benchlane/internal/http/invoice"
	requesth "github.com/benchlane/benchlane/internal/http/request"
	timesheeth "github.com/benchlane/benchlane/internal/http/timesheet"
	"github.com/benchlane/benchlane/internal/http/webhook"
	"github.com/benchlane/benchlane/internal/identity"
)

func New(
	jwtSecret []byte,
	requestsV1 *requesth.Handler,
	contractsV1 *contracth.Handler,
	timesheetsV1 *timesheeth.Handler,
	invoicesV1 *invoiceh.Handler,
	webhooks *webhook.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(identity.Middleware(jwtSecret))
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/requests", requestsV1.Routes)
		r.Route("/contracts", contractsV1.Routes)
		r.Route("/timesheets", timesheetsV1.Routes)
		r.Route("/invoices", invoicesV1.Routes)
	})

	// Provider callbacks authenticate with a shared secret, not a user
	// token.
	router.Route("/webhooks", webhooks.Routes)

	return router
}
