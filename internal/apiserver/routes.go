package apiserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router serving every API route under the base path.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	base := h.basePath

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(base+"/check-auth", h.checkAuth)
		r.Post(base+"/register", h.register)
		r.Post(base+"/login", h.login)
		r.Post(base+"/logout", h.logout)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(base+"/passwords", h.listPasswords)
		r.Post(base+"/passwords", h.createPassword)
		r.Put(base+"/passwords/{id}", h.updatePassword)
		r.Delete(base+"/passwords/{id}", h.deletePassword)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
