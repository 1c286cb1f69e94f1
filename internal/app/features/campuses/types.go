// internal/app/features/campuses/types.go
package campuses

import (
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/inputval"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type campusInput struct {
	UniversityID string `json:"universityId" validate:"required" label:"University ID"`
	Name         string `json:"name" validate:"required,max=200" label:"Name"`
	Address      string `json:"address" validate:"required,max=500" label:"Address"`
	Contact      string `json:"contact" validate:"required,max=200" label:"Contact"`
}

// toModel trims and validates the input. The university id is checked for
// shape only.
func (in campusInput) toModel() (models.Campus, error) {
	in.UniversityID = normalize.Name(in.UniversityID)
	in.Name = normalize.Name(in.Name)
	in.Address = normalize.Name(in.Address)
	in.Contact = normalize.Name(in.Contact)
	if v := inputval.Validate(in); v.HasErrors() {
		return models.Campus{}, apperr.Invalid(v.First())
	}
	uid, err := primitive.ObjectIDFromHex(in.UniversityID)
	if err != nil {
		return models.Campus{}, apperr.Invalid("Invalid university ID")
	}
	return models.Campus{
		UniversityID: uid,
		Name:         in.Name,
		Address:      in.Address,
		Contact:      in.Contact,
	}, nil
}

type campusResponse struct {
	Message string        `json:"message"`
	Campus  models.Campus `json:"campus"`
}

func campusID(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid("Invalid campus ID")
	}
	return oid, nil
}
