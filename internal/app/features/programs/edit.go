// internal/app/features/programs/edit.go
package programs

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate replaces every field of a program.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := programID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	p, err := decodeProgram(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err = h.Programs.Update(ctx, oid, p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Program not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update program", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionUpdated, p.ID, p.Title)
	respond.JSON(w, http.StatusOK, programResponse{Message: "Program updated successfully", Program: p})
}

// HandleDelete removes a program and echoes what was stored.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := programID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Programs.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Program not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete program", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionDeleted, p.ID, p.Title)
	respond.JSON(w, http.StatusOK, programResponse{Message: "Program deleted successfully", Program: p})
}
