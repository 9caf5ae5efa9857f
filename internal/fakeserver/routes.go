package fakeserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, s.withLogging)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)
	})
	router.Post("/graphql", s.graphql)

	router.Route("/actuator", func(r chi.Router) {
		r.Get("/health", s.healthProbe)
		r.Get("/metrics", s.metricsProbe)
	})

	return router
}
