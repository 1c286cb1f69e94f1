// internal/app/features/campuses/list.go
package campuses

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList returns all campuses, or those of ?universityId= when given.
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

	list, err := h.Campuses.Find(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list campuses", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeView returns one campus.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := campusID(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Campuses.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Campus not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load campus", err)
		return
	}
	respond.JSON(w, http.StatusOK, c)
}
