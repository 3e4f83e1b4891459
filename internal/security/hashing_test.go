package security

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	password := []byte("Dev-Password-123!")

	hash, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "" {
		t.Fatal("Hash returned empty string")
	}
	if err := h.Compare(hash, password); err != nil {
		t.Fatalf("Compare with correct password: %v", err)
	}
	if err := h.Compare(hash, []byte("wrong")); !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Fatalf("Compare with wrong password = %v, want ErrMismatchedHashAndPassword", err)
	}
}

func TestNewHasher_ClampsCost(t *testing.T) {
	testCases := []struct {
		name string
		cost int
		want int
	}{
		{"zero falls back to default", 0, bcrypt.DefaultCost},
		{"negative falls back to default", -3, bcrypt.DefaultCost},
		{"below min clamps up", 2, bcrypt.MinCost},
		{"above max clamps down", 40, bcrypt.MaxCost},
		{"valid cost kept", 12, 12},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewHasher(tc.cost).Cost; got != tc.want {
				t.Errorf("NewHasher(%d).Cost = %d, want %d", tc.cost, got, tc.want)
			}
		})
	}
}
