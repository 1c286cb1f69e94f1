// Package passwords hashes and checks account passwords with bcrypt.
package passwords

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when Configure has not been called.
const DefaultCost = 12

// ErrMismatch is returned by Check when the password does not match the hash.
var ErrMismatch = errors.New("password does not match")

var cost atomic.Int64

func init() {
	cost.Store(DefaultCost)
}

// Configure sets the bcrypt cost used by Hash. Values outside bcrypt's
// allowed range are rejected.
func Configure(c int) error {
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d,%d]", c, bcrypt.MinCost, bcrypt.MaxCost)
	}
	cost.Store(int64(c))
	return nil
}

// Cost returns the configured bcrypt cost.
func Cost() int {
	return int(cost.Load())
}

// Hash returns the bcrypt hash of password at the configured cost.
func Hash(password string) (string, error) {
	return HashWithCost(password, Cost())
}

// HashWithCost returns the bcrypt hash of password at an explicit cost.
func HashWithCost(password string, c int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), c)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Check compares password against hash in constant time. It returns
// ErrMismatch for a wrong password and a wrapped error for a corrupt hash.
func Check(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("check password: %w", err)
	}
	return nil
}
