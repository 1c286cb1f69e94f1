// internal/app/features/universities/handler.go
package universities

import (
	"context"

	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	"github.com/dalemusser/admitportal/internal/app/store/audit"
	campusstore "github.com/dalemusser/admitportal/internal/app/store/campuses"
	departmentstore "github.com/dalemusser/admitportal/internal/app/store/departments"
	facultystore "github.com/dalemusser/admitportal/internal/app/store/faculty"
	programstore "github.com/dalemusser/admitportal/internal/app/store/programs"
	universitystore "github.com/dalemusser/admitportal/internal/app/store/universities"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/authutil"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /universities: accounts, lookups, stats and the
// per-university child listings.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Audit  *auditlog.Logger
	Auth   *authutil.Authenticator

	Universities *universitystore.Store
	Campuses     *campusstore.Store
	Departments  *departmentstore.Store
	Faculty      *facultystore.Store
	Programs     *programstore.Store
}

// NewHandler constructs a Universities handler. limiter and audit may be nil.
func NewHandler(db *mongo.Database, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	h := &Handler{
		DB:           db,
		Log:          logger,
		ErrLog:       errLog,
		Audit:        audit,
		Universities: universitystore.New(db),
		Campuses:     campusstore.New(db),
		Departments:  departmentstore.New(db),
		Faculty:      facultystore.New(db),
		Programs:     programstore.New(db),
	}
	h.Auth = &authutil.Authenticator{
		Kind:     accountKind,
		NotFound: "University not found",
		Lookup:   h.lookupAccount,
		Limiter:  limiter,
		Audit:    audit,
	}
	return h
}

const accountKind = audit.AccountUniversity

func (h *Handler) lookupAccount(ctx context.Context, email string) (authutil.Account, error) {
	u, err := h.Universities.GetByEmail(ctx, email)
	if err != nil {
		return authutil.Account{}, err
	}
	return authutil.Account{ID: u.ID, Name: u.Name, PasswordHash: u.PasswordHash}, nil
}
