// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"time"

	"github.com/dalemusser/admitportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds generic admin entries. Admin login accounts live in
// adminaccountstore.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

func (s *Store) Create(ctx context.Context, a models.AdminEntry) (models.AdminEntry, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.AdminEntry{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.AdminEntry, error) {
	var a models.AdminEntry
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.AdminEntry{}, err
	}
	return a, nil
}

// List returns every entry, newest first.
func (s *Store) List(ctx context.Context) ([]models.AdminEntry, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.AdminEntry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces name and description. It returns mongo.ErrNoDocuments
// when id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, a models.AdminEntry) (models.AdminEntry, error) {
	var out models.AdminEntry
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":        a.Name,
			"description": a.Description,
			"updated_at":  time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return models.AdminEntry{}, err
	}
	return out, nil
}

// Delete removes the entry and returns what was stored.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.AdminEntry, error) {
	var out models.AdminEntry
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return models.AdminEntry{}, err
	}
	return out, nil
}
