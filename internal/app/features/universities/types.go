// internal/app/features/universities/types.go
package universities

import "go.mongodb.org/mongo-driver/bson/primitive"

type registerInput struct {
	Name          string `json:"name" validate:"required,max=200" label:"Name"`
	ContactPerson string `json:"contactPerson" validate:"required,max=200" label:"Contact person"`
	Email         string `json:"email" validate:"required,email,max=254" label:"Email"`
	Password      string `json:"password" validate:"required,maxbytes=72" label:"Password"`
	Address       string `json:"address" validate:"required,max=500" label:"Address"`
	Website       string `json:"website" validate:"omitempty,httpurl,max=500" label:"Website"`
	Description   string `json:"description" validate:"max=5000" label:"Description"`
}

type accountResponse struct {
	Message      string             `json:"message"`
	UniversityID primitive.ObjectID `json:"universityId"`
	Name         string             `json:"name"`
}
