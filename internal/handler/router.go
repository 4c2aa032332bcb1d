package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seojinpark/talktemplate/client/internal/handler/auth"
	"github.com/seojinpark/talktemplate/client/internal/service/account"
)

// NewRouter wires the stub's HTTP routes.
func NewRouter(accounts *account.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	authHandler := auth.New(accounts)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			authHandler.RegisterRoutes(ar)
		})
	})

	return r
}
