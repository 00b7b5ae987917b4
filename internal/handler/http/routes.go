package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/account", h.listAccounts)
			r.Post("/account", h.createAccount)
			r.Put("/account", h.updateAccount)

			r.Get("/categories", h.listCategories)
			r.Post("/categories", h.createCategory)
			r.Put("/categories/{id}", h.updateCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/transactions", h.listTransactions)
			r.Post("/transactions", h.createTransaction)
			r.Put("/transactions/{id}", h.updateTransaction)
			r.Delete("/transactions/{id}", h.deleteTransaction)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// notFound answers unknown routes and unsupported methods alike with a JSON
// 404, so callers cannot probe which routes exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
