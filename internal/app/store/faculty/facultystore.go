// internal/app/store/faculty/facultystore.go
package facultystore

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
	return &Store{c: db.Collection("faculty")}
}

func (s *Store) Create(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.CreatedAt = now
	f.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Faculty{}, err
	}
	return f, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Faculty, error) {
	var f models.Faculty
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return models.Faculty{}, err
	}
	return f, nil
}

// Find returns faculty members matching filter, oldest first unless opts sort otherwise.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Faculty, error) {
	if len(opts) == 0 {
		opts = []*options.FindOptions{options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})}
	}
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Faculty{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByUniversity lists the faculty members of one university.
func (s *Store) ByUniversity(ctx context.Context, universityID primitive.ObjectID) ([]models.Faculty, error) {
	return s.Find(ctx, bson.M{"university_id": universityID})
}

// Update replaces every mutable field and returns the stored result.
// It returns mongo.ErrNoDocuments when id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, f models.Faculty) (models.Faculty, error) {
	var out models.Faculty
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"university_id": f.UniversityID,
			"name":          f.Name,
			"designation":   f.Designation,
			"campus":        f.Campus,
			"department":    f.Department,
			"email":         f.Email,
			"updated_at":    time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return models.Faculty{}, err
	}
	return out, nil
}

// Delete removes the faculty member and returns what was stored.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Faculty, error) {
	var out models.Faculty
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return models.Faculty{}, err
	}
	return out, nil
}
