package passwords

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashWithCost("s3cret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashWithCost: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := Check(hash, "s3cret!"); err != nil {
		t.Errorf("Check with correct password: %v", err)
	}
	if err := Check(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Check with wrong password: got %v, want ErrMismatch", err)
	}
}

func TestCheck_CorruptHash(t *testing.T) {
	err := Check("not-a-bcrypt-hash", "anything")
	if err == nil {
		t.Fatal("expected error for corrupt hash")
	}
	if errors.Is(err, ErrMismatch) {
		t.Error("corrupt hash should not be reported as a mismatch")
	}
}

func TestConfigure(t *testing.T) {
	defer func() { _ = Configure(DefaultCost) }()

	if err := Configure(bcrypt.MinCost - 1); err == nil {
		t.Error("expected error for cost below minimum")
	}
	if err := Configure(bcrypt.MaxCost + 1); err == nil {
		t.Error("expected error for cost above maximum")
	}
	if err := Configure(bcrypt.MinCost); err != nil {
		t.Fatalf("Configure(MinCost): %v", err)
	}
	if Cost() != bcrypt.MinCost {
		t.Errorf("Cost() = %d, want %d", Cost(), bcrypt.MinCost)
	}

	hash, err := Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	got, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if got != bcrypt.MinCost {
		t.Errorf("hash cost = %d, want %d", got, bcrypt.MinCost)
	}
}
