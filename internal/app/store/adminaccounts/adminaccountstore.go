// internal/app/store/adminaccounts/adminaccountstore.go
package adminaccountstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/admitportal/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store holds the admin login accounts, kept apart from admin entries.
type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("an admin with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admin_accounts")}
}

func (s *Store) Create(ctx context.Context, a models.AdminAccount) (models.AdminAccount, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.AdminAccount{}, ErrDuplicateEmail
		}
		return models.AdminAccount{}, err
	}
	return a, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.AdminAccount, error) {
	var a models.AdminAccount
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		return models.AdminAccount{}, err
	}
	return a, nil
}
