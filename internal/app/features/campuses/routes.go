// internal/app/features/campuses/routes.go
package campuses

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Campus routes under the base path
// (typically "/api/universities/campuses" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)

	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
