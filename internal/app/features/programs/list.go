// internal/app/features/programs/list.go
package programs

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList returns programs, narrowed to one university by ?universityId=.
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

	list, err := h.Programs.Find(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list programs", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeView returns one program.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := programID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Programs.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Program not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load program", err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}
