// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dalemusser/admitportal/internal/app/system/normalize"
	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per key. A key may spend `limit` attempts
// at once and regains them evenly over `window`. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	every   rate.Limit
	burst   int
	idle    time.Duration
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing limit attempts per window for each key.
func New(limit int, window time.Duration) *Limiter {
	if limit < 1 {
		limit = 1
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    window * 2,
		stop:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow spends one attempt for key and reports whether it was available.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = time.Now()
	return b.lim.Allow()
}

// Reset forgets key so its next attempt starts with a full bucket.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Close stops the background sweeper.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(l.idle)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for key, b := range l.buckets {
				if now.Sub(b.lastSeen) > l.idle {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

var trustProxy atomic.Bool

// TrustProxyHeaders sets whether ClientIP reads X-Forwarded-For and
// X-Real-IP. Enable it only behind a proxy that overwrites those headers.
func TrustProxyHeaders(on bool) {
	trustProxy.Store(on)
}

// ClientIP extracts the client IP from an HTTP request. When proxy headers
// are trusted it checks X-Forwarded-For and X-Real-IP first; otherwise, and
// as a fallback, it uses RemoteAddr.
func ClientIP(r *http.Request) string {
	if trustProxy.Load() {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginConfig sets the login limits. Zero fields take the defaults:
// 10 attempts per minute per IP and 5 attempts per 5 minutes per email.
type LoginConfig struct {
	IPLimit     int
	IPWindow    time.Duration
	EmailLimit  int
	EmailWindow time.Duration
}

func (c LoginConfig) withDefaults() LoginConfig {
	if c.IPLimit <= 0 {
		c.IPLimit = 10
	}
	if c.IPWindow <= 0 {
		c.IPWindow = time.Minute
	}
	if c.EmailLimit <= 0 {
		c.EmailLimit = 5
	}
	if c.EmailWindow <= 0 {
		c.EmailWindow = 5 * time.Minute
	}
	return c
}

// LoginLimiter throttles login attempts per client IP and per account email.
// Students, universities and admins share one limiter; email keys are
// prefixed with the account kind so the same address is tracked separately.
type LoginLimiter struct {
	ip    *Limiter
	email *Limiter
}

// NewLoginLimiter creates a login limiter.
func NewLoginLimiter(cfg LoginConfig) *LoginLimiter {
	cfg = cfg.withDefaults()
	return &LoginLimiter{
		ip:    New(cfg.IPLimit, cfg.IPWindow),
		email: New(cfg.EmailLimit, cfg.EmailWindow),
	}
}

func emailKey(kind, email string) string {
	return kind + ":" + normalize.Email(email)
}

// Check spends one attempt for the request's IP and for (kind, email).
// It returns false with a client-facing reason when either is exhausted.
func (ll *LoginLimiter) Check(r *http.Request, kind, email string) (bool, string) {
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}
	if email != "" && !ll.email.Allow(emailKey(kind, email)) {
		return false, "Too many login attempts for this account. Please wait a few minutes."
	}
	return true, ""
}

// ResetEmail clears the per-account limit after a successful login.
func (ll *LoginLimiter) ResetEmail(kind, email string) {
	if email != "" {
		ll.email.Reset(emailKey(kind, email))
	}
}

// Close stops both sweepers.
func (ll *LoginLimiter) Close() {
	ll.ip.Close()
	ll.email.Close()
}
