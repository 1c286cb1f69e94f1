// Package authutil holds the email/password login flow shared by the
// student, university and admin account routes.
package authutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/app/system/passwords"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Credentials is the body of every login route.
type Credentials struct {
	Email    string `json:"email" validate:"required" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

// Account is the part of a stored account a login needs.
type Account struct {
	ID           primitive.ObjectID
	Name         string
	PasswordHash string
}

// LookupFunc fetches an account by normalized email. It returns
// mongo.ErrNoDocuments when no account has that email.
type LookupFunc func(ctx context.Context, email string) (Account, error)

// Authenticator checks credentials for one account kind.
type Authenticator struct {
	// Kind is the audit account kind (audit.AccountStudent, ...). It also
	// keys the per-email rate limit.
	Kind string
	// NotFound is the client message for an unknown email.
	NotFound string

	Lookup  LookupFunc
	Limiter *ratelimit.LoginLimiter
	Audit   *auditlog.Logger
}

// Login verifies c and returns the matching account. Failures come back as
// *apperr.Error: TooMany when rate limited, NotFound for an unknown email and
// Unauthorized for a wrong password.
func (a *Authenticator) Login(ctx context.Context, r *http.Request, c Credentials) (Account, error) {
	email := normalize.Email(c.Email)

	if a.Limiter != nil {
		if ok, reason := a.Limiter.Check(r, a.Kind, email); !ok {
			a.Audit.LoginFailedRateLimit(ctx, r, a.Kind, email, reason)
			return Account{}, apperr.RateLimited(reason)
		}
	}

	acct, err := a.Lookup(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		a.Audit.LoginFailedUserNotFound(ctx, r, a.Kind, email)
		return Account{}, apperr.Missing(a.NotFound)
	}
	if err != nil {
		return Account{}, apperr.Wrap("lookup "+a.Kind+" account", err)
	}

	if err := passwords.Check(acct.PasswordHash, c.Password); err != nil {
		if errors.Is(err, passwords.ErrMismatch) {
			a.Audit.LoginFailedWrongPassword(ctx, r, a.Kind, acct.ID, email)
			return Account{}, apperr.Unauthorised("Invalid credentials")
		}
		return Account{}, apperr.Wrap("check "+a.Kind+" password", err)
	}

	if a.Limiter != nil {
		a.Limiter.ResetEmail(a.Kind, email)
	}
	a.Audit.LoginSuccess(ctx, r, a.Kind, acct.ID, email)
	return acct, nil
}
