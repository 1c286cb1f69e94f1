// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/paging"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /audit: one page of events filtered by category,
// event_type, subject_id and an optional start_date/end_date (YYYY-MM-DD, UTC) range.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(query.Get(r, "category"))
	if !validCategory(category) {
		h.ErrLog.Write(w, r, apperr.Invalid("Unknown audit category"))
		return
	}
	page := paging.ParsePage(r)

	filter := audit.QueryFilter{
		Category:  category,
		EventType: strings.TrimSpace(query.Get(r, "event_type")),
		Limit:     paging.PageSize,
		Offset:    paging.Offset(page),
	}

	if s := strings.TrimSpace(query.Get(r, "subject_id")); s != "" {
		oid, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			h.ErrLog.Write(w, r, apperr.Invalid("Invalid subject ID"))
			return
		}
		filter.SubjectID = &oid
	}
	if s := strings.TrimSpace(query.Get(r, "start_date")); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.ErrLog.Write(w, r, apperr.Invalid("start_date must be YYYY-MM-DD"))
			return
		}
		filter.StartTime = &t
	}
	if s := strings.TrimSpace(query.Get(r, "end_date")); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.ErrLog.Write(w, r, apperr.Invalid("end_date must be YYYY-MM-DD"))
			return
		}
		// End of day
		endOfDay := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndTime = &endOfDay
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "audit log list")
	defer cancel()

	events, err := h.Events.Query(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "query audit events", err)
		return
	}
	total, err := h.Events.CountByFilter(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count audit events", err)
		return
	}

	respond.JSON(w, http.StatusOK, listResponse{
		Events:     events,
		Page:       page,
		TotalPages: paging.TotalPages(total),
		Total:      total,
	})
}
