// internal/app/features/programs/new.go
package programs

import (
	"context"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
)

// HandleCreate adds a program to an existing university.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, err := decodeProgram(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ok, err := h.Universities.Exists(ctx, p.UniversityID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "check university", err)
		return
	}
	if !ok {
		h.ErrLog.Write(w, r, apperr.Missing("University not found"))
		return
	}

	p, err = h.Programs.Create(ctx, p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create program", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionCreated, p.ID, p.Title)
	respond.JSON(w, http.StatusCreated, programResponse{Message: "Program added successfully", Program: p})
}
