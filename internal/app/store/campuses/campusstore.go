// internal/app/store/campuses/campusstore.go
package campusstore

import (
	"context"
	"time"

	"github.com/dalemusser/admitportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("campuses")}
}

func (s *Store) Create(ctx context.Context, c models.Campus) (models.Campus, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Campus{}, err
	}
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Campus, error) {
	var c models.Campus
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Campus{}, err
	}
	return c, nil
}

// Find returns campuses matching filter, oldest first unless opts sort otherwise.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Campus, error) {
	if len(opts) == 0 {
		opts = []*options.FindOptions{options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})}
	}
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Campus{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByUniversity lists the campuses of one university.
func (s *Store) ByUniversity(ctx context.Context, universityID primitive.ObjectID) ([]models.Campus, error) {
	return s.Find(ctx, bson.M{"university_id": universityID})
}

// Update replaces every mutable field and returns the stored result.
// It returns mongo.ErrNoDocuments when id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, c models.Campus) (models.Campus, error) {
	var out models.Campus
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"university_id": c.UniversityID,
			"name":          c.Name,
			"address":       c.Address,
			"contact":       c.Contact,
			"updated_at":    time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return models.Campus{}, err
	}
	return out, nil
}

// Delete removes the campus and returns what was stored.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Campus, error) {
	var out models.Campus
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return models.Campus{}, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
