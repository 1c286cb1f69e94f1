// internal/app/features/admins/types.go
package admins

import (
	"github.com/dalemusser/admitportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type signupInput struct {
	Name     string `json:"name" validate:"required,max=200" label:"Full name"`
	Email    string `json:"email" validate:"required,email,max=254" label:"Email"`
	Password string `json:"password" validate:"required,maxbytes=72" label:"Password"`
}

type accountResponse struct {
	Message  string             `json:"message"`
	AdminID  primitive.ObjectID `json:"adminId"`
	FullName string             `json:"fullName"`
}

type entryInput struct {
	Name        string `json:"name" validate:"required,max=200" label:"Name"`
	Description string `json:"description" validate:"required,max=5000" label:"Description"`
}

type entryResponse struct {
	Message string            `json:"message"`
	Admin   models.AdminEntry `json:"admin"`
}
