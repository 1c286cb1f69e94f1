// internal/app/features/students/types.go
package students

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
	Message   string             `json:"message"`
	StudentID primitive.ObjectID `json:"studentId"`
	FullName  string             `json:"fullName"`
}

type profileResponse struct {
	Message string         `json:"message"`
	Student models.Student `json:"student"`
}
