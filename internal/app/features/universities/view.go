// internal/app/features/universities/view.go
package universities

import (
	"context"
	"errors"
	"net/http"

	metricsstore "github.com/dalemusser/admitportal/internal/app/store/metrics"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// universityID parses the {id} URL parameter.
func universityID(r *http.Request) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid("Invalid university ID")
	}
	return oid, nil
}

// ServeList returns every university.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Universities.Find(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list universities", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeView returns one university.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := universityID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Universities.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("University not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load university", err)
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

// ServeStats returns the campus, program and applicant totals for a
// university. Unknown ids yield zero counts.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	oid, err := universityID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := metricsstore.FetchUniversityStats(ctx, h.DB, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "university stats", err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}
