package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// blogKeyParam names the path segment after /blogs/. It is an object key for
// GET and a numeric blog ID for the other methods; chi requires one name
// per segment position.
const blogKeyParam = "key"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/authenticate/login", h.login)
		r.Get("/blogs", h.getBlogList)
		r.Get("/blogs/{"+blogKeyParam+"}", h.getBlogContent)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/blogs", h.postBlog)
		r.Put("/blogs", h.putBlog)
		r.Delete("/blogs/{"+blogKeyParam+"}", h.deleteBlog)
		r.Get("/blogs/{"+blogKeyParam+"}/upload-token", h.getUploadToken)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
