// Package service provides the envelope cipher: AES-CFB encryption of individual values
// under a rotating set of keys, each envelope naming the key reference it was produced with.
package service

import (
	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// StreamCipher encrypts and decrypts with a caller-supplied IV. Output length equals input
// length.
type StreamCipher interface {
	// Encrypt writes the encryption of src into dst using iv.
	Encrypt(dst, src, iv []byte) error

	// Decrypt writes the decryption of src into dst using iv.
	Decrypt(dst, src, iv []byte) error
}

// Cipher encrypts values into self-describing envelopes and decrypts envelopes produced
// under any configured key.
type Cipher interface {
	// Encrypt encrypts plaintext under the current key. Nil or empty input yields nil.
	Encrypt(plaintext []byte) ([]byte, error)

	// EncryptString encrypts the UTF-8 bytes of s.
	EncryptString(s string) ([]byte, error)

	// Decrypt decrypts an envelope under the key it names. Nil input yields nil.
	Decrypt(envelope []byte) ([]byte, error)

	// DecryptString decrypts an envelope and returns the plaintext as a string.
	DecryptString(envelope []byte) (string, error)

	// KeyRef returns the key reference an envelope was produced under, without decrypting.
	KeyRef(envelope []byte) (cryptoDomain.KeyRef, error)

	// Rewrap re-encrypts an envelope under the current key. It reports false and returns
	// the input unchanged when the envelope already uses the current key.
	Rewrap(envelope []byte) ([]byte, bool, error)

	// CurrentKeyRef returns the reference new envelopes are produced under.
	CurrentKeyRef() cryptoDomain.KeyRef
}
