// internal/app/features/admins/auth.go
package admins

import (
	"context"
	"errors"
	"net/http"

	adminaccountstore "github.com/dalemusser/admitportal/internal/app/store/adminaccounts"
	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/authutil"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/inputval"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/app/system/passwords"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/admitportal/internal/domain/models"
)

// HandleSignup creates an admin account.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in signupInput
	if err := formutil.Decode(r, &in); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	in.Name = normalize.Name(in.Name)
	in.Email = normalize.Email(in.Email)
	if v := inputval.Validate(in); v.HasErrors() {
		h.ErrLog.Write(w, r, apperr.Invalid(v.First()))
		return
	}

	hash, err := passwords.Hash(in.Password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash admin password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.Accounts.Create(ctx, models.AdminAccount{
		FullName:     in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, adminaccountstore.ErrDuplicateEmail) {
		h.ErrLog.Write(w, r, apperr.Conflicting("Admin with this email already exists"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create admin account", err)
		return
	}

	h.Audit.Signup(ctx, r, audit.AccountAdmin, a.ID, a.Email)
	respond.JSON(w, http.StatusOK, accountResponse{
		Message:  "Admin signup successful",
		AdminID:  a.ID,
		FullName: a.FullName,
	})
}

// HandleLogin checks an admin's email and password.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in authutil.Credentials
	if err := formutil.Decode(r, &in); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	if v := inputval.Validate(in); v.HasErrors() {
		h.ErrLog.Write(w, r, apperr.Invalid(v.First()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Auth.Login(ctx, r, in)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, accountResponse{
		Message:  "Login successful",
		AdminID:  acct.ID,
		FullName: acct.Name,
	})
}
