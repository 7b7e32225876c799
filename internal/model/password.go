package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// MaxPasswordLen bounds both plaintext passwords (before hashing) and circle
// names. It is a cost/storage bound, independent of the digest width.
const MaxPasswordLen = 256

// PasswordHash is the fixed-width digest stored for a circle. The digest
// function is a contract between circle creation (the client submits the
// hash) and join/betray (the server hashes the submitted plaintext): both
// sides must compute SHA-256 over the raw password bytes.
type PasswordHash [sha256.Size]byte

// HashPassword digests a plaintext password. Returns ErrLongPassword before
// hashing if the plaintext exceeds MaxPasswordLen.
func HashPassword(plaintext string) (PasswordHash, error) {
	if len(plaintext) > MaxPasswordLen {
		return PasswordHash{}, ErrLongPassword
	}
	return sha256.Sum256([]byte(plaintext)), nil
}

// ParsePasswordHash decodes a hex-encoded 32-byte digest.
func ParsePasswordHash(s string) (PasswordHash, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != sha256.Size {
		return PasswordHash{}, ErrLongPassword
	}
	var h PasswordHash
	copy(h[:], b)
	return h, nil
}

// String returns the hex encoding of the digest.
func (h PasswordHash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalJSON encodes the digest as a hex string.
func (h PasswordHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a hex string digest.
func (h *PasswordHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePasswordHash(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
