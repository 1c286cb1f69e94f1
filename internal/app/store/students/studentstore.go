// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/admitportal/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("a student with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// Create inserts a new student. Email uniqueness is enforced by the
// uniq_students_email index.
func (s *Store) Create(ctx context.Context, st models.Student) (models.Student, error) {
	now := time.Now().UTC()
	st.ID = primitive.NewObjectID()
	st.CreatedAt = now
	st.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, st); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Student{}, ErrDuplicateEmail
		}
		return models.Student{}, err
	}
	return st, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// GetByEmail expects an already-normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// Find returns students matching the given filter with optional find options.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Student, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Student{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of students matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// CountApplicants counts students whose applied university is universityID.
func (s *Store) CountApplicants(ctx context.Context, universityID primitive.ObjectID) (int64, error) {
	return s.Count(ctx, bson.M{"applied_university": universityID.Hex()})
}

// ProfileUpdate lists the profile fields to overwrite. A nil pointer or nil
// slice leaves the stored value alone; a pointer to "" clears it.
type ProfileUpdate struct {
	DOB           *time.Time
	Gender        *string
	Nationality   *string
	Address       *string
	ContactNumber *string

	AppliedUniversity *string
	AppliedCampus     *string
	AppliedProgram    *string

	MatricBoard    *string
	MatricYear     *int
	MatricMarks    *string
	MatricSubjects []string

	InterBoard    *string
	InterYear     *int
	InterMarks    *string
	InterSubjects []string

	BachelorUni   *string
	BachelorYear  *int
	BachelorMarks *string
	BachelorMajor []string

	MasterUni   *string
	MasterYear  *int
	MasterMarks *string
	MasterMajor []string

	IDDocumentPath         *string
	MatricTranscriptPath   *string
	InterTranscriptPath    *string
	BachelorTranscriptPath *string
	MasterTranscriptPath   *string
}

func (u ProfileUpdate) set() bson.M {
	set := bson.M{}
	str := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	num := func(key string, v *int) {
		if v != nil {
			set[key] = *v
		}
	}
	list := func(key string, v []string) {
		if v != nil {
			set[key] = v
		}
	}

	if u.DOB != nil {
		set["dob"] = *u.DOB
	}
	str("gender", u.Gender)
	str("nationality", u.Nationality)
	str("address", u.Address)
	str("contact_number", u.ContactNumber)

	str("applied_university", u.AppliedUniversity)
	str("applied_campus", u.AppliedCampus)
	str("applied_program", u.AppliedProgram)

	str("matric_board", u.MatricBoard)
	num("matric_year", u.MatricYear)
	str("matric_marks", u.MatricMarks)
	list("matric_subjects", u.MatricSubjects)

	str("inter_board", u.InterBoard)
	num("inter_year", u.InterYear)
	str("inter_marks", u.InterMarks)
	list("inter_subjects", u.InterSubjects)

	str("bachelor_uni", u.BachelorUni)
	num("bachelor_year", u.BachelorYear)
	str("bachelor_marks", u.BachelorMarks)
	list("bachelor_major", u.BachelorMajor)

	str("master_uni", u.MasterUni)
	num("master_year", u.MasterYear)
	str("master_marks", u.MasterMarks)
	list("master_major", u.MasterMajor)

	str("id_document_path", u.IDDocumentPath)
	str("matric_transcript_path", u.MatricTranscriptPath)
	str("inter_transcript_path", u.InterTranscriptPath)
	str("bachelor_transcript_path", u.BachelorTranscriptPath)
	str("master_transcript_path", u.MasterTranscriptPath)
	return set
}

// UpdateProfile merges u into the student's record and returns the result.
// It returns mongo.ErrNoDocuments when the student does not exist.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, u ProfileUpdate) (models.Student, error) {
	set := u.set()
	set["updated_at"] = time.Now().UTC()

	var st models.Student
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&st)
	if err != nil {
		return models.Student{}, err
	}
	return st, nil
}
