package auditlog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/admitportal/internal/app/features/auditlog"
	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/paging"
	"github.com/dalemusser/admitportal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type listBody struct {
	Events     []audit.Event `json:"events"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int64         `json:"total"`
}

func newTestHandler(t *testing.T) (*auditlog.Handler, *audit.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return auditlog.NewHandler(db, errLog, logger), audit.New(db)
}

func seed(t *testing.T, store *audit.Store, n int, category, eventType string, at time.Time) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for i := 0; i < n; i++ {
		err := store.Log(ctx, audit.Event{
			Timestamp: at.Add(time.Duration(i) * time.Second),
			Category:  category,
			EventType: eventType,
			Email:     fmt.Sprintf("user%d@example.com", i),
			Success:   true,
		})
		if err != nil {
			t.Fatalf("Log: %v", err)
		}
	}
}

func TestServeList_Paging(t *testing.T) {
	handler, store := newTestHandler(t)
	now := time.Now().UTC()
	seed(t, store, 60, audit.CategoryAuth, audit.EventLoginSuccess, now.Add(-time.Hour))
	seed(t, store, 5, audit.CategoryAdmin, "campus_created", now)

	rec := testutil.NewRecorder()
	handler.ServeList(rec, httptest.NewRequest("GET", "/", nil))
	rec.AssertStatus(t, http.StatusOK)

	var body listBody
	rec.DecodeJSON(t, &body)
	if body.Total != 65 || body.TotalPages != 2 || body.Page != 1 {
		t.Errorf("paging = page %d of %d, total %d; want page 1 of 2, total 65", body.Page, body.TotalPages, body.Total)
	}
	if len(body.Events) != 50 {
		t.Fatalf("expected 50 events on page 1, got %d", len(body.Events))
	}
	if body.Events[0].EventType != "campus_created" {
		t.Errorf("newest event first: got %q", body.Events[0].EventType)
	}

	rec = testutil.NewRecorder()
	handler.ServeList(rec, httptest.NewRequest("GET", "/?page=2", nil))
	rec.DecodeJSON(t, &body)
	if len(body.Events) != 15 || body.Page != 2 {
		t.Errorf("page 2: got %d events, page %d", len(body.Events), body.Page)
	}
}

func TestServeList_HugePage(t *testing.T) {
	handler, store := newTestHandler(t)
	seed(t, store, 3, audit.CategoryAuth, audit.EventLoginSuccess, time.Now().UTC())

	rec := testutil.NewRecorder()
	handler.ServeList(rec, httptest.NewRequest("GET", "/?page=9223372036854775807", nil))
	rec.AssertStatus(t, http.StatusOK)

	var body listBody
	rec.DecodeJSON(t, &body)
	if body.Page != paging.MaxPage || len(body.Events) != 0 || body.Total != 3 {
		t.Errorf("got page %d, %d events, total %d", body.Page, len(body.Events), body.Total)
	}
}

func TestServeList_Filters(t *testing.T) {
	handler, store := newTestHandler(t)
	now := time.Now().UTC()
	seed(t, store, 3, audit.CategoryAuth, audit.EventLoginFailedWrongPassword, now)
	seed(t, store, 2, audit.CategoryAuth, audit.EventLoginSuccess, now)
	seed(t, store, 4, audit.CategoryAdmin, "program_deleted", now.AddDate(0, 0, -10))

	tests := []struct {
		name      string
		target    string
		wantTotal int64
	}{
		{"category", "/?category=admin", 4},
		{"event type", "/?event_type=" + audit.EventLoginFailedWrongPassword, 3},
		{"date range", "/?start_date=" + now.AddDate(0, 0, -1).Format("2006-01-02"), 5},
		{"unknown subject", "/?subject_id=" + primitive.NewObjectID().Hex(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			handler.ServeList(rec, httptest.NewRequest("GET", tt.target, nil))
			rec.AssertStatus(t, http.StatusOK)
			var body listBody
			rec.DecodeJSON(t, &body)
			if body.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", body.Total, tt.wantTotal)
			}
			if body.TotalPages != 1 {
				t.Errorf("totalPages = %d, want 1", body.TotalPages)
			}
		})
	}
}

func TestServeList_BadParams(t *testing.T) {
	handler, _ := newTestHandler(t)

	for _, target := range []string{
		"/?category=security",
		"/?start_date=yesterday",
		"/?end_date=2024-13-01",
		"/?subject_id=abc",
	} {
		rec := testutil.NewRecorder()
		handler.ServeList(rec, httptest.NewRequest("GET", target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: status %d, want 400", target, rec.Code)
		}
	}
}
