// internal/app/features/students/profile.go
package students

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	studentstore "github.com/dalemusser/admitportal/internal/app/store/students"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/filestore"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdateProfile merges the submitted profile fields and documents into
// a student's record. Only keys present in the form are written.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.MaxUploadBytes {
		h.ErrLog.Write(w, r, apperr.PayloadTooLarge("Request body too large."))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := formutil.ParseForm(r); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	idHex, _ := formutil.Lookup(r, "studentId")
	idHex = strings.TrimSpace(idHex)
	if idHex == "" {
		h.ErrLog.Write(w, r, apperr.Invalid("Student ID is required"))
		return
	}
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.Write(w, r, apperr.Invalid("Invalid student ID"))
		return
	}

	upd, err := parseProfile(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, err := h.Students.GetByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Write(w, r, apperr.Missing("Student not found"))
			return
		}
		h.ErrLog.LogServerError(w, r, "load student", err)
		return
	}

	keys, err := h.storeDocuments(ctx, r, &upd)
	if err != nil {
		h.removeDocuments(keys)
		h.ErrLog.LogServerError(w, r, "store student documents", err)
		return
	}

	st, err := h.Students.UpdateProfile(ctx, oid, upd)
	if err != nil {
		h.removeDocuments(keys)
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Write(w, r, apperr.Missing("Student not found"))
			return
		}
		h.ErrLog.LogServerError(w, r, "update student profile", err)
		return
	}

	respond.JSON(w, http.StatusOK, profileResponse{
		Message: "Profile saved successfully",
		Student: st,
	})
}

// documentFields maps each upload field to the path it fills.
var documentFields = []struct {
	field string
	dst   func(*studentstore.ProfileUpdate) **string
}{
	{"idDocument", func(u *studentstore.ProfileUpdate) **string { return &u.IDDocumentPath }},
	{"matricTranscript", func(u *studentstore.ProfileUpdate) **string { return &u.MatricTranscriptPath }},
	{"interTranscript", func(u *studentstore.ProfileUpdate) **string { return &u.InterTranscriptPath }},
	{"bachelorTranscript", func(u *studentstore.ProfileUpdate) **string { return &u.BachelorTranscriptPath }},
	{"masterTranscript", func(u *studentstore.ProfileUpdate) **string { return &u.MasterTranscriptPath }},
}

// storeDocuments uploads every submitted document and records its key on u.
// It returns the keys written so far, also on error.
func (h *Handler) storeDocuments(ctx context.Context, r *http.Request, u *studentstore.ProfileUpdate) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var keys []string
	for _, d := range documentFields {
		fhs := r.MultipartForm.File[d.field]
		if len(fhs) == 0 {
			continue
		}
		if h.Files == nil {
			return keys, errors.New("no file store configured")
		}
		key, err := h.saveDocument(ctx, fhs[0])
		if err != nil {
			return keys, fmt.Errorf("%s: %w", d.field, err)
		}
		keys = append(keys, key)
		*d.dst(u) = &key
	}
	return keys, nil
}

func (h *Handler) saveDocument(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return filestore.Upload(ctx, h.Files, h.Namer, h.UploadDir, fh.Filename, f, fh.Header.Get("Content-Type"))
}

// removeDocuments deletes uploads whose record update did not happen.
func (h *Handler) removeDocuments(keys []string) {
	if len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Medium())
	defer cancel()
	for _, k := range keys {
		if err := h.Files.Delete(ctx, k); err != nil {
			h.Log.Warn("remove orphaned upload", zap.String("key", k), zap.Error(err))
		}
	}
}

// parseProfile reads the profile fields present in the parsed form.
func parseProfile(r *http.Request) (studentstore.ProfileUpdate, error) {
	var u studentstore.ProfileUpdate

	texts := []struct {
		key string
		dst **string
	}{
		{"gender", &u.Gender},
		{"nationality", &u.Nationality},
		{"address", &u.Address},
		{"contactNumber", &u.ContactNumber},
		{"appliedUniversity", &u.AppliedUniversity},
		{"appliedCampus", &u.AppliedCampus},
		{"appliedProgram", &u.AppliedProgram},
		{"matricBoard", &u.MatricBoard},
		{"matricMarks", &u.MatricMarks},
		{"interBoard", &u.InterBoard},
		{"interMarks", &u.InterMarks},
		{"bachelorUni", &u.BachelorUni},
		{"bachelorMarks", &u.BachelorMarks},
		{"masterUni", &u.MasterUni},
		{"masterMarks", &u.MasterMarks},
	}
	for _, t := range texts {
		if v, ok := formutil.Lookup(r, t.key); ok {
			v = strings.TrimSpace(v)
			*t.dst = &v
		}
	}

	years := []struct {
		key   string
		label string
		dst   **int
	}{
		{"matricYear", "Matric year", &u.MatricYear},
		{"interYear", "Inter year", &u.InterYear},
		{"bachelorYear", "Bachelor year", &u.BachelorYear},
		{"masterYear", "Master year", &u.MasterYear},
	}
	for _, y := range years {
		v, ok := formutil.Lookup(r, y.key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return u, apperr.Invalid(y.label + " must be a number.")
		}
		*y.dst = &n
	}

	if v, ok := formutil.Lookup(r, "dob"); ok && strings.TrimSpace(v) != "" {
		dob, err := parseDate(strings.TrimSpace(v))
		if err != nil {
			return u, apperr.Invalid("Date of birth must be a date (YYYY-MM-DD).")
		}
		u.DOB = &dob
	}

	lists := []struct {
		key string
		dst *[]string
	}{
		{"matricSubjects", &u.MatricSubjects},
		{"interSubjects", &u.InterSubjects},
		{"bachelorMajor", &u.BachelorMajor},
		{"masterMajor", &u.MasterMajor},
	}
	for _, l := range lists {
		// An empty value counts as absent and leaves the stored list alone.
		if v, ok := formutil.Lookup(r, l.key); ok && strings.TrimSpace(v) != "" {
			*l.dst = normalize.CommaList(v)
		}
	}

	return u, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
