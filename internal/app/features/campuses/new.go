// internal/app/features/campuses/new.go
package campuses

import (
	"context"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
)

// HandleCreate adds a campus to an existing university.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	ok, err := h.Universities.Exists(ctx, c.UniversityID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "check university", err)
		return
	}
	if !ok {
		h.ErrLog.Write(w, r, apperr.Missing("University not found"))
		return
	}

	c, err = h.Campuses.Create(ctx, c)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create campus", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionCreated, c.ID, c.Name)
	respond.JSON(w, http.StatusCreated, campusResponse{Message: "Campus added successfully", Campus: c})
}
