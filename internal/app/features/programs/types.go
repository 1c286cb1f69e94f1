// internal/app/features/programs/types.go
package programs

import (
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/htmlsanitize"
	"github.com/dalemusser/admitportal/internal/app/system/inputval"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// programInput is the create and update body. Duration and fees are free
// text ("4 years", "PKR 120,000 per semester").
type programInput struct {
	UniversityID string `json:"universityId" validate:"required" label:"University ID"`
	Title        string `json:"title" validate:"required,max=200" label:"Title"`
	Campus       string `json:"campus" validate:"required,max=200" label:"Campus"`
	Department   string `json:"department" validate:"required,max=200" label:"Department"`
	Duration     string `json:"duration" validate:"required,max=100" label:"Duration"`
	Fees         string `json:"fees" validate:"required,max=100" label:"Fees"`
	Description  string `json:"description" validate:"max=5000" label:"Description"`
}

type programResponse struct {
	Message string         `json:"message"`
	Program models.Program `json:"program"`
}

func decodeProgram(r *http.Request) (models.Program, error) {
	var in programInput
	if err := formutil.Decode(r, &in); err != nil {
		return models.Program{}, err
	}
	in.UniversityID = normalize.Name(in.UniversityID)
	in.Title = normalize.Name(in.Title)
	in.Campus = normalize.Name(in.Campus)
	in.Department = normalize.Name(in.Department)
	in.Duration = normalize.Name(in.Duration)
	in.Fees = normalize.Name(in.Fees)
	in.Description = htmlsanitize.Clean(in.Description)
	if v := inputval.Validate(in); v.HasErrors() {
		return models.Program{}, apperr.Invalid(v.First())
	}
	uid, err := primitive.ObjectIDFromHex(in.UniversityID)
	if err != nil {
		return models.Program{}, apperr.Invalid("Invalid university ID")
	}
	return models.Program{
		UniversityID: uid,
		Title:        in.Title,
		Campus:       in.Campus,
		Department:   in.Department,
		Duration:     in.Duration,
		Fees:         in.Fees,
		Description:  in.Description,
	}, nil
}

func programID(r *http.Request) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid("Invalid program ID")
	}
	return oid, nil
}
