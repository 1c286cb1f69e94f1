// internal/domain/models/university.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// University is an institution account. It owns campuses, departments,
// faculty and programs through their UniversityID back-references.
type University struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	ContactPerson string             `bson:"contact_person" json:"contactPerson"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"password_hash" json:"-"`
	Address       string             `bson:"address" json:"address"`
	Website       string             `bson:"website,omitempty" json:"website,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
