package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHasher_HashAndVerify(t *testing.T) {
	// Minimum cost keeps the test fast.
	h := NewHasher(4)

	hash, err := h.Hash("secret-password-1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if strings.Contains(hash, "secret-password-1") {
		t.Fatal("hash contains the plaintext password")
	}

	if err := h.Verify("secret-password-1", hash); err != nil {
		t.Errorf("expected match, got %v", err)
	}

	if err := h.Verify("wrong-password", hash); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == second {
		t.Error("expected salted hashes of the same password to differ")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher(4)

	if err := h.Verify("anything", "not-a-bcrypt-hash"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch for malformed hash, got %v", err)
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"below_min", 1, DefaultCost},
		{"above_max", 99, DefaultCost},
		{"in_range", 12, 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if h := NewHasher(test.cost); h.cost != test.want {
				t.Errorf("expected cost %d, got %d", test.want, h.cost)
			}
		})
	}
}
