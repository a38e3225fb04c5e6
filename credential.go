package bankapp

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const saltBytes = 16

// Vault hashes and verifies secrets. Secrets are salted with a fresh
// random value before hashing and are never retained; only the
// (salt, hash) pair is handed back for storage.
type Vault struct {
	cost int
}

// NewVault returns a Vault with the given bcrypt cost factor. Costs
// outside bcrypt's supported range fall back to the default.
func NewVault(cost int) *Vault {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Vault{cost: cost}
}

func (v *Vault) Hash(secret string) (salt, hash string, err error) {
	sb := make([]byte, saltBytes)
	if _, err = rand.Read(sb); err != nil {
		return "", "", fmt.Errorf("generating salt: %w", err)
	}
	salt = hex.EncodeToString(sb)
	hb, err := bcrypt.GenerateFromPassword([]byte(salt+secret), v.cost)
	if err != nil {
		return "", "", fmt.Errorf("hashing secret: %w", err)
	}
	return salt, string(hb), nil
}

// Verify reports whether secret matches the stored (salt, hash) pair.
// Any mismatch, including a malformed stored hash, is false; the
// comparison itself is constant-time.
func (v *Vault) Verify(secret, salt, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(salt+secret)) == nil
}
