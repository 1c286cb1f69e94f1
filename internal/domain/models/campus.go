// internal/domain/models/campus.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campus belongs to a university.
type Campus struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UniversityID primitive.ObjectID `bson:"university_id" json:"universityId"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Contact      string             `bson:"contact" json:"contact"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
