// internal/app/features/students/routes.go
package students

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the student routes under the base path
// (typically "/api/students" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)
	r.Post("/updateProfile", h.HandleUpdateProfile)

	r.Get("/", h.ServeList)
	r.Get("/profile/{id}", h.ServeProfile)

	return r
}
