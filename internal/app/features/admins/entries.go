// internal/app/features/admins/entries.go
package admins

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/htmlsanitize"
	"github.com/dalemusser/admitportal/internal/app/system/inputval"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func decodeEntry(r *http.Request) (models.AdminEntry, error) {
	var in entryInput
	if err := formutil.Decode(r, &in); err != nil {
		return models.AdminEntry{}, err
	}
	in.Name = normalize.Name(in.Name)
	in.Description = htmlsanitize.Clean(in.Description)
	if v := inputval.Validate(in); v.HasErrors() {
		return models.AdminEntry{}, apperr.Invalid(v.First())
	}
	return models.AdminEntry{Name: in.Name, Description: in.Description}, nil
}

func entryID(r *http.Request) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid("Invalid admin ID")
	}
	return oid, nil
}

// HandleCreate adds an admin entry.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	a, err := decodeEntry(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err = h.Entries.Create(ctx, a)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create admin entry", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionCreated, a.ID, a.Name)
	respond.JSON(w, http.StatusCreated, entryResponse{Message: "Admin entry added successfully", Admin: a})
}

// ServeList returns every admin entry, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Entries.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list admin entries", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := entryID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Entries.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Admin entry not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load admin entry", err)
		return
	}
	respond.JSON(w, http.StatusOK, a)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := entryID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	a, err := decodeEntry(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err = h.Entries.Update(ctx, oid, a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Admin entry not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update admin entry", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionUpdated, a.ID, a.Name)
	respond.JSON(w, http.StatusOK, entryResponse{Message: "Admin entry updated successfully", Admin: a})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := entryID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.Entries.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Admin entry not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete admin entry", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionDeleted, a.ID, a.Name)
	respond.JSON(w, http.StatusOK, entryResponse{Message: "Admin entry deleted successfully", Admin: a})
}
