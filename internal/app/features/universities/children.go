// internal/app/features/universities/children.go
package universities

import (
	"context"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serveChildren writes the records list(ctx, id) returns for the {id}
// university.
func serveChildren[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string,
	list func(context.Context, primitive.ObjectID) ([]T, error)) {
	oid, err := universityID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := list(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list university "+what, err)
		return
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) ServeCampuses(w http.ResponseWriter, r *http.Request) {
	serveChildren(h, w, r, "campuses", h.Campuses.ByUniversity)
}

func (h *Handler) ServeDepartments(w http.ResponseWriter, r *http.Request) {
	serveChildren(h, w, r, "departments", h.Departments.ByUniversity)
}

func (h *Handler) ServeFaculty(w http.ResponseWriter, r *http.Request) {
	serveChildren(h, w, r, "faculty", h.Faculty.ByUniversity)
}

func (h *Handler) ServePrograms(w http.ResponseWriter, r *http.Request) {
	serveChildren(h, w, r, "programs", h.Programs.ByUniversity)
}
