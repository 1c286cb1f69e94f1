// internal/domain/models/department.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department belongs to a university. Campus is a display label, not a
// reference to a Campus record.
type Department struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UniversityID primitive.ObjectID `bson:"university_id" json:"universityId"`
	Name         string             `bson:"name" json:"name"`
	Campus       string             `bson:"campus" json:"campus"`
	Description  string             `bson:"description" json:"description"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
