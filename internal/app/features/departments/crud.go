// internal/app/features/departments/crud.go
package departments

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
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type departmentInput struct {
	UniversityID string `json:"universityId" validate:"required" label:"University ID"`
	Name         string `json:"name" validate:"required,max=200" label:"Name"`
	Campus       string `json:"campus" validate:"required,max=200" label:"Campus"`
	Description  string `json:"description" validate:"max=5000" label:"Description"`
}

type departmentResponse struct {
	Message    string            `json:"message"`
	Department models.Department `json:"department"`
}

// decodeDepartment reads, cleans and validates a department body.
func decodeDepartment(r *http.Request) (models.Department, error) {
	var in departmentInput
	if err := formutil.Decode(r, &in); err != nil {
		return models.Department{}, err
	}
	in.UniversityID = normalize.Name(in.UniversityID)
	in.Name = normalize.Name(in.Name)
	in.Campus = normalize.Name(in.Campus)
	in.Description = htmlsanitize.Clean(in.Description)
	if v := inputval.Validate(in); v.HasErrors() {
		return models.Department{}, apperr.Invalid(v.First())
	}
	uid, err := primitive.ObjectIDFromHex(in.UniversityID)
	if err != nil {
		return models.Department{}, apperr.Invalid("Invalid university ID")
	}
	return models.Department{
		UniversityID: uid,
		Name:         in.Name,
		Campus:       in.Campus,
		Description:  in.Description,
	}, nil
}

func departmentID(r *http.Request) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid("Invalid department ID")
	}
	return oid, nil
}

// HandleCreate adds a department. The university reference is not checked.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	d, err := decodeDepartment(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, err = h.Departments.Create(ctx, d)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create department", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionCreated, d.ID, d.Name)
	respond.JSON(w, http.StatusCreated, departmentResponse{Message: "Department added successfully", Department: d})
}

// ServeList returns all departments, optionally narrowed by ?universityId=.
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

	list, err := h.Departments.Find(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list departments", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := departmentID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Departments.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Department not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load department", err)
		return
	}
	respond.JSON(w, http.StatusOK, d)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := departmentID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	d, err := decodeDepartment(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, err = h.Departments.Update(ctx, oid, d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Department not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update department", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionUpdated, d.ID, d.Name)
	respond.JSON(w, http.StatusOK, departmentResponse{Message: "Department updated successfully", Department: d})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := departmentID(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, err := h.Departments.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apperr.Missing("Department not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete department", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, entity, audit.ActionDeleted, d.ID, d.Name)
	respond.JSON(w, http.StatusOK, departmentResponse{Message: "Department deleted successfully", Department: d})
}
