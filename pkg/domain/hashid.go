package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashedID is a one-way hash of a sensitive identifier. It is the only form
// in which user identifiers may appear in logs or API responses; the raw
// value cannot be recovered from it, and the type has no constructor other
// than HashID.
type HashedID string

// HashID hashes a sensitive identifier with SHA-256.
func HashID(raw string) HashedID {
	sum := sha256.Sum256([]byte(raw))
	return HashedID(hex.EncodeToString(sum[:]))
}

// String returns the hex digest.
func (h HashedID) String() string {
	return string(h)
}
