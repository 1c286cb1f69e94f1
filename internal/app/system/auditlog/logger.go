// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"github.com/dalemusser/admitportal/internal/app/system/requestid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Destination settings for a category.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// ValidMode reports whether s is a recognised destination setting.
func ValidMode(s string) bool {
	switch s {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Config holds audit logging configuration.
type Config struct {
	// Auth controls signup and login events.
	Auth string
	// Admin controls registrations and record changes.
	Admin string
}

// Logger provides convenience methods for logging audit events.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.Account != "" {
		fields = append(fields, zap.String("account", event.Account))
	}
	if event.SubjectID != nil {
		fields = append(fields, zap.String("subject_id", event.SubjectID.Hex()))
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// A nil Logger is a no-op so handlers can be built without auditing.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	}
	if setting == "" {
		setting = ModeAll
	}
	if setting == ModeOff {
		return
	}

	if setting == ModeAll || setting == ModeLog {
		l.logToZap(event)
	}

	if (setting == ModeAll || setting == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func fromRequest(r *http.Request, category, eventType string) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		RequestID: requestid.FromContext(r.Context()),
	}
}

// --- Authentication Events ---

// Signup logs a new student or admin account.
func (l *Logger) Signup(ctx context.Context, r *http.Request, account string, id primitive.ObjectID, email string) {
	e := fromRequest(r, audit.CategoryAuth, audit.EventSignup)
	e.Account, e.SubjectID, e.Email, e.Success = account, &id, email, true
	l.Log(ctx, e)
}

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, account string, id primitive.ObjectID, email string) {
	e := fromRequest(r, audit.CategoryAuth, audit.EventLoginSuccess)
	e.Account, e.SubjectID, e.Email, e.Success = account, &id, email, true
	l.Log(ctx, e)
}

// LoginFailedUserNotFound logs a login attempt for an unknown email.
func (l *Logger) LoginFailedUserNotFound(ctx context.Context, r *http.Request, account, email string) {
	e := fromRequest(r, audit.CategoryAuth, audit.EventLoginFailedUserNotFound)
	e.Account, e.Email = account, email
	e.FailureReason = "account not found"
	l.Log(ctx, e)
}

// LoginFailedWrongPassword logs a password mismatch.
func (l *Logger) LoginFailedWrongPassword(ctx context.Context, r *http.Request, account string, id primitive.ObjectID, email string) {
	e := fromRequest(r, audit.CategoryAuth, audit.EventLoginFailedWrongPassword)
	e.Account, e.SubjectID, e.Email = account, &id, email
	e.FailureReason = "wrong password"
	l.Log(ctx, e)
}

// LoginFailedRateLimit logs an attempt rejected by the login limiter.
func (l *Logger) LoginFailedRateLimit(ctx context.Context, r *http.Request, account, email, reason string) {
	e := fromRequest(r, audit.CategoryAuth, audit.EventLoginFailedRateLimit)
	e.Account, e.Email = account, email
	e.FailureReason = reason
	l.Log(ctx, e)
}

// --- Admin Events ---

// UniversityRegistered logs a new university account.
func (l *Logger) UniversityRegistered(ctx context.Context, r *http.Request, id primitive.ObjectID, name, email string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventUniversityRegistered)
	e.Account, e.SubjectID, e.Email, e.Success = audit.AccountUniversity, &id, email, true
	e.Details = map[string]string{"name": name}
	l.Log(ctx, e)
}

// RecordChanged logs a create, update or delete of an entity such as
// "campus" or "admin_entry". The event type is "<entity>_<action>".
func (l *Logger) RecordChanged(ctx context.Context, r *http.Request, entity, action string, id primitive.ObjectID, label string) {
	e := fromRequest(r, audit.CategoryAdmin, entity+"_"+action)
	e.SubjectID, e.Success = &id, true
	if label != "" {
		e.Details = map[string]string{"label": label}
	}
	l.Log(ctx, e)
}
