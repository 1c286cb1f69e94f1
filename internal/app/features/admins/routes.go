// internal/app/features/admins/routes.go
package admins

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin routes under the base path
// (typically "/api/admins" from bootstrap). Bootstrap also mounts the audit
// log router at "/audit" on the returned router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
