// internal/app/features/admins/handler.go
package admins

import (
	"context"

	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	adminaccountstore "github.com/dalemusser/admitportal/internal/app/store/adminaccounts"
	adminstore "github.com/dalemusser/admitportal/internal/app/store/admins"
	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/authutil"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// entity names admin entries in audit events.
const entity = "admin_entry"

// Handler serves /admins: admin account signup and login plus the generic
// admin entries.
type Handler struct {
	Accounts *adminaccountstore.Store
	Entries  *adminstore.Store
	Auth     *authutil.Authenticator
	Audit    *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs an Admins handler. limiter and audit may be nil.
func NewHandler(db *mongo.Database, limiter *ratelimit.LoginLimiter, auditLog *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	h := &Handler{
		Accounts: adminaccountstore.New(db),
		Entries:  adminstore.New(db),
		Audit:    auditLog,
		ErrLog:   errLog,
		Log:      logger,
	}
	h.Auth = &authutil.Authenticator{
		Kind:     audit.AccountAdmin,
		NotFound: "Admin not found",
		Lookup:   h.lookupAccount,
		Limiter:  limiter,
		Audit:    auditLog,
	}
	return h
}

func (h *Handler) lookupAccount(ctx context.Context, email string) (authutil.Account, error) {
	a, err := h.Accounts.GetByEmail(ctx, email)
	if err != nil {
		return authutil.Account{}, err
	}
	return authutil.Account{ID: a.ID, Name: a.FullName, PasswordHash: a.PasswordHash}, nil
}
