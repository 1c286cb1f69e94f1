// internal/app/features/faculty/crud.go
package faculty

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errNotFound = apperr.Missing("Faculty member not found")

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	f, err := decodeFaculty(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err = h.Faculty.Create(ctx, f)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create faculty member", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionCreated, f.ID, f.Name)
	respond.JSON(w, http.StatusCreated, facultyResponse{Message: "Faculty member added successfully", Faculty: f})
}

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if raw := query.Get(r, "universityId"); raw != "" {
		uid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			h.ErrLog.Write(w, r, apperr.Invalid("Invalid university ID"))
			return
		}
		filter["university_id"] = uid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Faculty.Find(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list faculty", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := facultyID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := h.Faculty.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, errNotFound)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load faculty member", err)
		return
	}
	respond.JSON(w, http.StatusOK, f)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := facultyID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	f, err := decodeFaculty(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err = h.Faculty.Update(ctx, oid, f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, errNotFound)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update faculty member", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionUpdated, f.ID, f.Name)
	respond.JSON(w, http.StatusOK, facultyResponse{Message: "Faculty member updated successfully", Faculty: f})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := facultyID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err := h.Faculty.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, errNotFound)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete faculty member", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionDeleted, f.ID, f.Name)
	respond.JSON(w, http.StatusOK, facultyResponse{Message: "Faculty member deleted successfully", Faculty: f})
}
