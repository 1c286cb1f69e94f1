// internal/app/features/faculty/routes.go
package faculty

import "github.com/go-chi/chi/v5"

// Routes mounts the faculty routes under "/api/universities/faculty".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.ServeView)
		r.Put("/", h.HandleUpdate)
		r.Delete("/", h.HandleDelete)
	})

	return r
}
