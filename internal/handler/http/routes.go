package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Post("/api/compare", h.compare)

	router.Route("/api/text", func(r chi.Router) {
		r.Post("/encrypt", h.encryptText)
		r.Post("/decrypt", h.decryptText)
	})

	router.Route("/api/files", func(r chi.Router) {
		r.Post("/encrypt", h.encryptFile)
		r.Post("/decrypt", h.decryptFile)
		r.Get("/", h.listFiles)
		r.Get("/{name}", h.downloadFile)
		r.Delete("/{name}", h.deleteFile)
	})

	router.Route("/api/passwords", func(r chi.Router) {
		r.Post("/", h.createPasswordEntry)
		r.Get("/", h.listPasswordEntries)
		r.Get("/{id}", h.getPasswordEntry)
		r.Post("/{id}/reveal", h.revealPasswordEntry)
		r.Delete("/{id}", h.deletePasswordEntry)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
