// internal/app/features/campuses/delete.go
package campuses

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleDelete removes a campus and echoes what was stored.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := campusID(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	c, err := h.Campuses.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Campus not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete campus", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionDeleted, c.ID, c.Name)
	respond.JSON(w, http.StatusOK, campusResponse{Message: "Campus deleted successfully", Campus: c})
}
