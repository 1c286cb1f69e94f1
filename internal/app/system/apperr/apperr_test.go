package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.InvalidArgument, http.StatusBadRequest},
		{apperr.Conflict, http.StatusBadRequest},
		{apperr.Unauthorized, http.StatusUnauthorized},
		{apperr.NotFound, http.StatusNotFound},
		{apperr.TooMany, http.StatusTooManyRequests},
		{apperr.TooLarge, http.StatusRequestEntityTooLarge},
		{apperr.Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestFrom(t *testing.T) {
	nf := apperr.Missing("Campus not found")
	wrapped := fmt.Errorf("handler: %w", nf)

	got := apperr.From(wrapped)
	assert.Equal(t, apperr.NotFound, got.Kind)
	assert.Equal(t, "Campus not found", got.Message())

	plain := errors.New("socket closed")
	got = apperr.From(plain)
	assert.Equal(t, apperr.Internal, got.Kind)
	assert.ErrorIs(t, got, plain)
}

func TestInternalMessageHidesCause(t *testing.T) {
	cause := errors.New("connection refused 10.0.0.5:27017")
	e := apperr.Wrap("find campus", cause)

	assert.Equal(t, apperr.InternalMessage, e.Message())
	assert.Contains(t, e.Error(), "connection refused")
	assert.ErrorIs(t, e, cause)
}
