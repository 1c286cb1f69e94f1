package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/admitportal/internal/app/system/passwords"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) hash(password string) string {
	f.t.Helper()
	h, err := passwords.HashWithCost(password, bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	return h
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s: %v", coll, err)
	}
}

// CreateStudent inserts a student account with only identity fields set.
func (f *Fixtures) CreateStudent(ctx context.Context, fullName, email, password string) models.Student {
	f.t.Helper()
	now := time.Now().UTC()
	s := models.Student{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: f.hash(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "students", s)
	return s
}

// CreateUniversity inserts a university account.
func (f *Fixtures) CreateUniversity(ctx context.Context, name, email, password string) models.University {
	f.t.Helper()
	u := models.University{
		ID:            primitive.NewObjectID(),
		Name:          name,
		ContactPerson: "Registrar",
		Email:         email,
		PasswordHash:  f.hash(password),
		Address:       "1 University Road",
		CreatedAt:     time.Now().UTC(),
	}
	f.insert(ctx, "universities", u)
	return u
}

// CreateCampus inserts a campus owned by universityID.
func (f *Fixtures) CreateCampus(ctx context.Context, universityID primitive.ObjectID, name string) models.Campus {
	f.t.Helper()
	now := time.Now().UTC()
	c := models.Campus{
		ID:           primitive.NewObjectID(),
		UniversityID: universityID,
		Name:         name,
		Address:      "Campus Road",
		Contact:      "042-000000",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "campuses", c)
	return c
}

// CreateDepartment inserts a department owned by universityID.
func (f *Fixtures) CreateDepartment(ctx context.Context, universityID primitive.ObjectID, name string) models.Department {
	f.t.Helper()
	now := time.Now().UTC()
	d := models.Department{
		ID:           primitive.NewObjectID(),
		UniversityID: universityID,
		Name:         name,
		Campus:       "Main",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "departments", d)
	return d
}

// CreateFaculty inserts a faculty member owned by universityID.
func (f *Fixtures) CreateFaculty(ctx context.Context, universityID primitive.ObjectID, name string) models.Faculty {
	f.t.Helper()
	now := time.Now().UTC()
	m := models.Faculty{
		ID:           primitive.NewObjectID(),
		UniversityID: universityID,
		Name:         name,
		Designation:  "Lecturer",
		Campus:       "Main",
		Department:   "Computer Science",
		Email:        "faculty@example.edu",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "faculty", m)
	return m
}

// CreateProgram inserts a program owned by universityID.
func (f *Fixtures) CreateProgram(ctx context.Context, universityID primitive.ObjectID, title string) models.Program {
	f.t.Helper()
	now := time.Now().UTC()
	p := models.Program{
		ID:           primitive.NewObjectID(),
		UniversityID: universityID,
		Title:        title,
		Campus:       "Main",
		Department:   "Computer Science",
		Duration:     "4 years",
		Fees:         "100000",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "programs", p)
	return p
}

// CreateAdminEntry inserts a generic admin entry.
func (f *Fixtures) CreateAdminEntry(ctx context.Context, name, description string) models.AdminEntry {
	f.t.Helper()
	now := time.Now().UTC()
	a := models.AdminEntry{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(ctx, "admins", a)
	return a
}

// CreateAdminAccount inserts an admin login account.
func (f *Fixtures) CreateAdminAccount(ctx context.Context, fullName, email, password string) models.AdminAccount {
	f.t.Helper()
	a := models.AdminAccount{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: f.hash(password),
		CreatedAt:    time.Now().UTC(),
	}
	f.insert(ctx, "admin_accounts", a)
	return a
}
