package ratelimit

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsBurstThenBlocks(t *testing.T) {
	l := New(3, time.Hour)
	defer l.Close()

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("k"), "attempt %d should be allowed", i+1)
	}
	assert.False(t, l.Allow("k"), "fourth attempt should be blocked")
	assert.True(t, l.Allow("other"), "keys are independent")
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Hour)
	defer l.Close()

	require.True(t, l.Allow("k"))
	require.False(t, l.Allow("k"))
	l.Reset("k")
	assert.True(t, l.Allow("k"))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted bool
		remote  string
		xff     string
		xri     string
		want    string
	}{
		{"remote addr", false, "10.0.0.1:5555", "", "", "10.0.0.1"},
		{"forwarded ignored", false, "10.0.0.1:5555", "203.0.113.7", "", "10.0.0.1"},
		{"real ip ignored", false, "10.0.0.1:5555", "", "198.51.100.3", "10.0.0.1"},
		{"forwarded first hop", true, "10.0.0.1:5555", "203.0.113.7, 10.0.0.2", "", "203.0.113.7"},
		{"real ip", true, "10.0.0.1:5555", "", "198.51.100.3", "198.51.100.3"},
		{"trusted without headers", true, "10.0.0.1:5555", "", "", "10.0.0.1"},
		{"no port", false, "10.0.0.9", "", "", "10.0.0.9"},
	}
	t.Cleanup(func() { TrustProxyHeaders(false) })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			TrustProxyHeaders(tt.trusted)
			r := httptest.NewRequest("POST", "/api/students/login", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}

func TestLoginLimiter_ForwardedHeaderDoesNotEvadeIPLimit(t *testing.T) {
	ll := NewLoginLimiter(LoginConfig{IPLimit: 2, IPWindow: time.Hour, EmailLimit: 100})
	defer ll.Close()

	for i, xff := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		r := httptest.NewRequest("POST", "/api/students/login", nil)
		r.RemoteAddr = "10.0.0.1:5555"
		r.Header.Set("X-Forwarded-For", xff)
		ok, _ := ll.Check(r, "student", "user"+strconv.Itoa(i)+"@example.com")
		if i < 2 {
			require.True(t, ok, "attempt %d", i)
		} else {
			assert.False(t, ok, "rotating X-Forwarded-For must not reset the per-IP limit")
		}
	}
}

func TestLoginLimiter_PerEmail(t *testing.T) {
	ll := NewLoginLimiter(LoginConfig{IPLimit: 100, EmailLimit: 2, EmailWindow: time.Hour})
	defer ll.Close()
	r := httptest.NewRequest("POST", "/api/students/login", nil)

	ok, _ := ll.Check(r, "student", "A@Example.com")
	require.True(t, ok)
	ok, _ = ll.Check(r, "student", "a@example.com ")
	require.True(t, ok)
	ok, reason := ll.Check(r, "student", "a@example.com")
	assert.False(t, ok)
	assert.Contains(t, reason, "this account")

	ok, _ = ll.Check(r, "university", "a@example.com")
	assert.True(t, ok, "other account kinds are tracked separately")

	ll.ResetEmail("student", "a@example.com")
	ok, _ = ll.Check(r, "student", "a@example.com")
	assert.True(t, ok)
}

func TestLoginLimiter_PerIP(t *testing.T) {
	ll := NewLoginLimiter(LoginConfig{IPLimit: 1, IPWindow: time.Hour})
	defer ll.Close()
	r := httptest.NewRequest("POST", "/api/admins/login", nil)

	ok, _ := ll.Check(r, "admin", "one@example.com")
	require.True(t, ok)
	ok, reason := ll.Check(r, "admin", "two@example.com")
	assert.False(t, ok)
	assert.Contains(t, reason, "wait a minute")
}
