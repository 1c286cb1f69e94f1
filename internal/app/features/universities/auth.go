// internal/app/features/universities/auth.go
package universities

import (
	"context"
	"errors"
	"net/http"

	universitystore "github.com/dalemusser/admitportal/internal/app/store/universities"
	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/authutil"
	"github.com/dalemusser/admitportal/internal/app/system/formutil"
	"github.com/dalemusser/admitportal/internal/app/system/htmlsanitize"
	"github.com/dalemusser/admitportal/internal/app/system/inputval"
	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"github.com/dalemusser/admitportal/internal/app/system/passwords"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/admitportal/internal/domain/models"
)

// HandleRegister creates a university account.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := formutil.Decode(r, &in); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	in.Name = normalize.Name(in.Name)
	in.ContactPerson = normalize.Name(in.ContactPerson)
	in.Email = normalize.Email(in.Email)
	in.Address = normalize.Name(in.Address)
	in.Website = normalize.Name(in.Website)
	in.Description = htmlsanitize.Clean(in.Description)
	if v := inputval.Validate(in); v.HasErrors() {
		h.ErrLog.Write(w, r, apperr.Invalid(v.First()))
		return
	}

	hash, err := passwords.Hash(in.Password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash university password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Universities.Create(ctx, models.University{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		PasswordHash:  hash,
		Address:       in.Address,
		Website:       in.Website,
		Description:   in.Description,
	})
	if errors.Is(err, universitystore.ErrDuplicateEmail) {
		h.ErrLog.Write(w, r, apperr.Conflicting("University with this email already exists"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create university", err)
		return
	}

	h.Audit.UniversityRegistered(ctx, r, u.ID, u.Name, u.Email)
	respond.JSON(w, http.StatusOK, accountResponse{
		Message:      "University registration successful",
		UniversityID: u.ID,
		Name:         u.Name,
	})
}

// HandleLogin checks a university's email and password.
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
		Message:      "Login successful",
		UniversityID: acct.ID,
		Name:         acct.Name,
	})
}
