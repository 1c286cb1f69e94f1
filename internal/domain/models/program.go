// internal/domain/models/program.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a degree program offered by a university. Duration and Fees are
// free text ("4 years", "PKR 120,000 per semester").
type Program struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UniversityID primitive.ObjectID `bson:"university_id" json:"universityId"`
	Title        string             `bson:"title" json:"title"`
	Campus       string             `bson:"campus" json:"campus"`
	Department   string             `bson:"department" json:"department"`
	Duration     string             `bson:"duration" json:"duration"`
	Fees         string             `bson:"fees" json:"fees"`
	Description  string             `bson:"description" json:"description"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
