// internal/app/features/students/list.go
package students

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList returns every student.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Students.Find(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list students", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeProfile returns one student.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Write(w, r, apperr.Invalid("Invalid student ID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := h.Students.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Student not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load student", err)
		return
	}
	respond.JSON(w, http.StatusOK, st)
}
