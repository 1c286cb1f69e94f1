// internal/domain/models/faculty.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Faculty is a teaching staff member listed by a university.
type Faculty struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UniversityID primitive.ObjectID `bson:"university_id" json:"universityId"`
	Name         string             `bson:"name" json:"name"`
	Designation  string             `bson:"designation" json:"designation"`
	Campus       string             `bson:"campus" json:"campus"`
	Department   string             `bson:"department" json:"department"`
	Email        string             `bson:"email" json:"email"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
