// internal/app/features/faculty/input.go
package faculty

import (
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/inputval"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type facultyInput struct {
	UniversityID string `json:"universityId" validate:"required" label:"University ID"`
	Name         string `json:"name" validate:"required,max=200" label:"Name"`
	Designation  string `json:"designation" validate:"required,max=200" label:"Designation"`
	Campus       string `json:"campus" validate:"required,max=200" label:"Campus"`
	Department   string `json:"department" validate:"required,max=200" label:"Department"`
	Email        string `json:"email" validate:"required,email,max=254" label:"Email"`
}

type facultyResponse struct {
	Message string         `json:"message"`
	Faculty models.Faculty `json:"faculty"`
}

func decodeFaculty(r *http.Request) (models.Faculty, error) {
	var in facultyInput
	if err := formutil.Decode(r, &in); err != nil {
		return models.Faculty{}, err
	}
	in.UniversityID = normalize.Name(in.UniversityID)
	in.Name = normalize.Name(in.Name)
	in.Designation = normalize.Name(in.Designation)
	in.Campus = normalize.Name(in.Campus)
	in.Department = normalize.Name(in.Department)
	in.Email = normalize.Email(in.Email)
	if v := inputval.Validate(in); v.HasErrors() {
		return models.Faculty{}, apperr.Invalid(v.First())
	}
	uid, err := primitive.ObjectIDFromHex(in.UniversityID)
	if err != nil {
		return models.Faculty{}, apperr.Invalid("Invalid university ID")
	}
	return models.Faculty{
		UniversityID: uid,
		Name:         in.Name,
		Designation:  in.Designation,
		Campus:       in.Campus,
		Department:   in.Department,
		Email:        in.Email,
	}, nil
}

func facultyID(r *http.Request) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid("Invalid faculty ID")
	}
	return oid, nil
}
