// internal/app/features/students/handler.go
package students

import (
	"context"

	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	"github.com/dalemusser/admitportal/internal/app/store/audit"
	studentstore "github.com/dalemusser/admitportal/internal/app/store/students"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/authutil"
	"github.com/dalemusser/admitportal/internal/app/system/filestore"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes caps a profile update request when Options leaves
// MaxUploadBytes unset.
const DefaultMaxUploadBytes = 20 << 20

// Options carries the collaborators the student routes need beyond the DB.
type Options struct {
	Files          filestore.Store
	UploadDir      string
	MaxUploadBytes int64
	Limiter        *ratelimit.LoginLimiter
	Audit          *auditlog.Logger
}

// Handler serves the /students routes.
type Handler struct {
	Students *studentstore.Store
	Files    filestore.Store
	Namer    *filestore.Namer
	Auth     *authutil.Authenticator
	Audit    *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger

	UploadDir      string
	MaxUploadBytes int64
}

// NewHandler constructs a Students handler bound to a DB and logger.
func NewHandler(db *mongo.Database, opts Options, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if opts.UploadDir == "" {
		opts.UploadDir = "uploads"
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	h := &Handler{
		Students:       studentstore.New(db),
		Files:          opts.Files,
		Namer:          filestore.NewNamer(),
		Audit:          opts.Audit,
		ErrLog:         errLog,
		Log:            logger,
		UploadDir:      opts.UploadDir,
		MaxUploadBytes: opts.MaxUploadBytes,
	}
	h.Auth = &authutil.Authenticator{
		Kind:     audit.AccountStudent,
		NotFound: "Student not found",
		Lookup:   h.lookupAccount,
		Limiter:  opts.Limiter,
		Audit:    opts.Audit,
	}
	return h
}

func (h *Handler) lookupAccount(ctx context.Context, email string) (authutil.Account, error) {
	st, err := h.Students.GetByEmail(ctx, email)
	if err != nil {
		return authutil.Account{}, err
	}
	return authutil.Account{ID: st.ID, Name: st.FullName, PasswordHash: st.PasswordHash}, nil
}
