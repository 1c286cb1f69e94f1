// internal/app/features/campuses/edit.go
package campuses

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate replaces every field of a campus.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := campusID(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	var in campusInput
	if err := formutil.Decode(r, &in); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	c, err := in.toModel()
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	c, err = h.Campuses.Update(ctx, oid, c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Campus not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update campus", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionUpdated, c.ID, c.Name)
	respond.JSON(w, http.StatusOK, campusResponse{Message: "Campus updated successfully", Campus: c})
}
