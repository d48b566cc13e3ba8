package domain

import (
	"bytes"
	"crypto/sha256"
	"time"

	"github.com/google/uuid"
)

// KeyRef is the durable small-integer identity of a raw key. It is embedded as a varint
// in every envelope.
type KeyRef uint32

// KeyRecord maps a key hash to its KeyRef. Records are created once, when a key is first
// seen at startup, and are never updated or deleted: historical keys must stay resolvable
// for as long as any envelope encrypted under them may need decrypting.
type KeyRecord struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	KeyRef    KeyRef    // Reference embedded in envelopes
	KeyHash   []byte    // HashKey of the raw key, never usable for decryption
	CreatedAt time.Time
}

// NewKeyRecord creates a record for a freshly assigned reference.
func NewKeyRecord(ref KeyRef, keyHash []byte) *KeyRecord {
	return &KeyRecord{
		ID:        uuid.Must(uuid.NewV7()),
		KeyRef:    ref,
		KeyHash:   keyHash,
		CreatedAt: time.Now().UTC(),
	}
}

// HashKey returns the identity hash of a raw key: a two-byte marker followed by the
// SHA-256 digest of the key. A nil or empty key hashes to nil.
func HashKey(key []byte) []byte {
	if len(key) == 0 {
		return nil
	}

	digest := sha256.Sum256(key)

	out := make([]byte, 0, KeyHashSize)
	out = append(out, keyHashPrefix0, keyHashPrefix1)
	return append(out, digest[:]...)
}

// MatchesKey reports whether the record was created for the given raw key.
func (r *KeyRecord) MatchesKey(key []byte) bool {
	return bytes.Equal(r.KeyHash, HashKey(key))
}
