// internal/app/features/students/auth.go
package students

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	studentstore "github.com/dalemusser/admitportal/internal/app/store/students"
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

// HandleSignup creates a student account.
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
		h.ErrLog.LogServerError(w, r, "hash student password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st, err := h.Students.Create(ctx, models.Student{
		FullName:     in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, studentstore.ErrDuplicateEmail) {
		h.ErrLog.Write(w, r, apperr.Conflicting("Email already in use"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create student", err)
		return
	}

	h.Audit.Signup(ctx, r, audit.AccountStudent, st.ID, st.Email)
	respond.JSON(w, http.StatusOK, accountResponse{
		Message:   "Signup successful",
		StudentID: st.ID,
		FullName:  st.FullName,
	})
}

// HandleLogin checks a student's email and password. No session is issued;
// the client keeps the returned id.
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
		Message:   "Login successful",
		StudentID: acct.ID,
		FullName:  acct.Name,
	})
}
