// internal/app/features/universities/routes.go
package universities

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the university routes under the base path
// (typically "/api/universities" from bootstrap). The campus, department,
// faculty and program routers are mounted onto the returned router by
// bootstrap; their static prefixes take precedence over "/{id}".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)
	r.Get("/{id}/stats", h.ServeStats)

	r.Get("/{id}/campuses", h.ServeCampuses)
	r.Get("/{id}/departments", h.ServeDepartments)
	r.Get("/{id}/faculty", h.ServeFaculty)
	r.Get("/{id}/programs", h.ServePrograms)

	return r
}
