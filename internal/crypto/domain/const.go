// Package domain defines the core models of field-level envelope encryption.
//
// Every raw symmetric key supplied through configuration is identified by a small durable
// integer, the KeyRef. KeyRefs are assigned once by content hash and persisted as
// KeyRecords, so an envelope produced by any instance, at any time, can name the key it was
// encrypted under without carrying key material or a full hash.
//
// Key lifecycle: STAGED (next) → CURRENT → LEGACY → RETIRED. Transitions happen between
// deployments by editing configuration; nothing here rotates keys automatically.
package domain

import "crypto/aes"

// Envelope layout: [version:1][keyRef:uvarint][iv:IVSize][payload:rest].
const (
	// FormatVersion is the single supported envelope format. It is persisted inside
	// application data and must never change meaning.
	FormatVersion byte = 0x00

	// IVSize is the initialization vector length, the AES block size.
	IVSize = aes.BlockSize

	// MinEnvelopeSize is the smallest well-formed envelope: version, a one-byte
	// varint and the IV.
	MinEnvelopeSize = 1 + 1 + IVSize
)

// Key hashing constants. The two-byte prefix marks a value as an already-computed key hash
// and keeps hashes byte-compatible with rows written by earlier deployments.
const (
	keyHashPrefix0 byte = 0x68
	keyHashPrefix1 byte = 0x3a

	// KeyHashSize is the length of a key hash: prefix plus a SHA-256 digest.
	KeyHashSize = 2 + 32
)

// Configuration slot conventions.
const (
	// DefaultKeyEnvPrefix prefixes every key slot environment variable.
	DefaultKeyEnvPrefix = "FIELDCRYPT_KEY_"

	// SlotCurrent names the slot holding the key used for new encryptions.
	SlotCurrent = "current"

	// SlotNext names the slot holding the key staged for the following rotation.
	SlotNext = "next"

	// MaxKeySlots bounds the numbered legacy slot scan.
	MaxKeySlots = 1000

	// SlotKeyDelimiter separates the two keys a numbered slot may carry.
	SlotKeyDelimiter = "|"
)

// KeyEncoding describes how key slot values are encoded.
type KeyEncoding string

const (
	// EncodingBase64 is standard base64 with padding.
	EncodingBase64 KeyEncoding = "base64"

	// EncodingHex is case-insensitive base16.
	EncodingHex KeyEncoding = "hex"
)
