package faculty_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	"github.com/dalemusser/admitportal/internal/app/features/faculty"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/dalemusser/admitportal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*faculty.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := faculty.NewHandler(db, nil, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func validForm(uid primitive.ObjectID) url.Values {
	return url.Values{
		"universityId": {uid.Hex()},
		"name":         {"Dr. Amara Chen"},
		"designation":  {"Associate Professor"},
		"campus":       {"Main"},
		"department":   {"Physics"},
		"email":        {"A.Chen@Northfield.edu"},
	}
}

func TestHandleCreate(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uid := primitive.NewObjectID()
	rec := testutil.NewRecorder()
	handler.HandleCreate(rec, testutil.FormRequest("POST", "/", validForm(uid)))
	rec.AssertStatus(t, http.StatusCreated)

	var body struct {
		Message string         `json:"message"`
		Faculty models.Faculty `json:"faculty"`
	}
	rec.DecodeJSON(t, &body)
	if body.Message != "Faculty member added successfully" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Faculty.Email != "a.chen@northfield.edu" {
		t.Errorf("email = %q, want normalized", body.Faculty.Email)
	}

	count, err := fixtures.DB().Collection("faculty").CountDocuments(ctx, bson.M{"university_id": uid})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 faculty member, got %d", count)
	}
}

func TestHandleCreate_Rejects(t *testing.T) {
	handler, _ := newTestHandler(t)
	uid := primitive.NewObjectID()

	noDesignation := validForm(uid)
	noDesignation.Del("designation")
	badEmail := validForm(uid)
	badEmail.Set("email", "not-an-email")

	tests := []struct {
		name      string
		form      url.Values
		wantError string
	}{
		{"missing designation", noDesignation, "Designation is required."},
		{"bad email", badEmail, "A valid email address is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			handler.HandleCreate(rec, testutil.FormRequest("POST", "/", tt.form))
			rec.AssertStatus(t, http.StatusBadRequest)
			if got := rec.ErrorMessage(t); got != tt.wantError {
				t.Errorf("error = %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestRoutes_CRUD(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uid := primitive.NewObjectID()
	m := fixtures.CreateFaculty(ctx, uid, "Dr. Okafor")
	fixtures.CreateFaculty(ctx, primitive.NewObjectID(), "Dr. Elsewhere")
	router := faculty.Routes(handler)

	serve := func(r *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, r)
		return rec
	}

	rec := serve(httptest.NewRequest("GET", "/?universityId="+uid.Hex(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var list []models.Faculty
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Dr. Okafor" {
		t.Errorf("unexpected list: %+v", list)
	}

	form := validForm(uid)
	form.Set("name", "Dr. N. Okafor")
	req := testutil.FormRequest("PUT", "/"+m.ID.Hex(), form)
	if rec := serve(req); rec.Code != http.StatusOK {
		t.Errorf("update: status %d, body %s", rec.Code, rec.Body.String())
	}

	if rec := serve(httptest.NewRequest("GET", "/"+m.ID.Hex(), nil)); rec.Code != http.StatusOK {
		t.Errorf("view: status %d", rec.Code)
	}

	if rec := serve(httptest.NewRequest("DELETE", "/"+m.ID.Hex(), nil)); rec.Code != http.StatusOK {
		t.Errorf("delete: status %d", rec.Code)
	}

	rec = serve(httptest.NewRequest("GET", "/"+m.ID.Hex(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("view after delete: status %d, want 404", rec.Code)
	}

	rec = serve(httptest.NewRequest("GET", "/xyz", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status %d, want 400", rec.Code)
	}
}
