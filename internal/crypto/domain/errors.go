package domain

import (
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// Configuration errors.
//
// These are startup-fatal: a security component with malformed key configuration has no
// safe degraded mode. All of them wrap apperrors.ErrInvalidConfiguration so the host
// process can tell them apart from per-call failures.
var (
	// ErrKeySlotBlank indicates a required key slot (current or next) is unset or blank.
	ErrKeySlotBlank = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "key slot is blank")

	// ErrInvalidKeyEncoding indicates a key slot value could not be decoded with the
	// configured encoding, or the encoding itself is unknown.
	ErrInvalidKeyEncoding = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "invalid key encoding")

	// ErrInvalidKeySize indicates decoded key material is not a valid AES key length
	// (16, 24 or 32 bytes).
	ErrInvalidKeySize = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "invalid key size")

	// ErrInvalidKeySlot indicates a numbered slot holds more than two keys or an empty
	// entry around the delimiter.
	ErrInvalidKeySlot = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "invalid key slot")

	// ErrInsufficientKeys indicates fewer than two distinct keys are configured.
	ErrInsufficientKeys = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "at least two distinct keys are required")

	// ErrDuplicateKey indicates two configuration slots supply byte-identical key
	// material, which would make the key reference of that key ambiguous.
	ErrDuplicateKey = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "duplicate key")

	// ErrCurrentKeyNotFound indicates the current key did not resolve to a key reference.
	ErrCurrentKeyNotFound = apperrors.Wrap(apperrors.ErrInvalidConfiguration, "current key not found")
)

// Per-call errors.
//
// These fail a single Encrypt or Decrypt call. None of them is retried: a format error
// cannot succeed on a second attempt. In a host application a decrypt failure on stored
// data is a data-integrity incident, most often a retired key still referenced by live data.
var (
	// ErrInvalidEnvelope indicates the ciphertext is not a well-formed envelope.
	ErrInvalidEnvelope = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid envelope")

	// ErrUnsupportedVersion indicates the envelope version byte is not FormatVersion.
	ErrUnsupportedVersion = apperrors.Wrap(ErrInvalidEnvelope, "unsupported envelope version")

	// ErrTruncatedEnvelope indicates the envelope ends before its key reference or IV.
	ErrTruncatedEnvelope = apperrors.Wrap(ErrInvalidEnvelope, "truncated envelope")

	// ErrKeyNotFound indicates the envelope names a key reference that is not in the
	// configured key set, typically a retired key.
	ErrKeyNotFound = apperrors.Wrap(apperrors.ErrNotFound, "key not found")

	// ErrEncryptionFailed indicates the block cipher could not be initialized or the
	// IV could not be generated.
	ErrEncryptionFailed = apperrors.New("encryption failed")

	// ErrDecryptionFailed indicates the block cipher could not be initialized for a
	// resolved key.
	ErrDecryptionFailed = apperrors.New("decryption failed")
)
