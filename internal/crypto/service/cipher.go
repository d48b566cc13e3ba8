package service

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// EnvelopeCipher implements Cipher over a KeySet.
//
// Envelope layout:
//
//	[version:1][keyRef:uvarint][iv:16][payload]
//
// The payload is the AES-CFB encryption of the plaintext and has the same length. Every
// call draws a fresh IV, so encrypting the same value twice yields different envelopes.
// EnvelopeCipher holds no per-call state and is safe for concurrent use.
type EnvelopeCipher struct {
	keys *KeySet
	rand io.Reader
}

var _ Cipher = (*EnvelopeCipher)(nil)

// CipherOption configures an EnvelopeCipher.
type CipherOption func(*EnvelopeCipher)

// WithRandReader replaces crypto/rand as the IV source. The reader must be safe for
// concurrent use if the cipher is shared.
func WithRandReader(r io.Reader) CipherOption {
	return func(c *EnvelopeCipher) {
		c.rand = r
	}
}

// NewEnvelopeCipher creates a cipher over keys.
func NewEnvelopeCipher(keys *KeySet, opts ...CipherOption) *EnvelopeCipher {
	c := &EnvelopeCipher{
		keys: keys,
		rand: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentKeyRef returns the reference new envelopes are produced under.
func (c *EnvelopeCipher) CurrentKeyRef() cryptoDomain.KeyRef {
	return c.keys.CurrentKeyRef()
}

// Encrypt encrypts plaintext under the current key.
func (c *EnvelopeCipher) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, nil
	}
	return c.encryptWith(c.keys.CurrentKeyRef(), plaintext)
}

// EncryptString encrypts the UTF-8 bytes of s.
func (c *EnvelopeCipher) EncryptString(s string) ([]byte, error) {
	return c.Encrypt([]byte(s))
}

func (c *EnvelopeCipher) encryptWith(ref cryptoDomain.KeyRef, plaintext []byte) ([]byte, error) {
	var iv [cryptoDomain.IVSize]byte
	if _, err := io.ReadFull(c.rand, iv[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to generate IV: %w", cryptoDomain.ErrEncryptionFailed, err)
	}

	out := make([]byte, 0, EnvelopeSize(ref, len(plaintext)))
	out = appendEnvelopeHeader(out, ref, iv[:])
	headerLen := len(out)
	out = out[:headerLen+len(plaintext)]

	err := c.keys.withKey(ref, func(key []byte) error {
		stream, err := NewAESCFB(key)
		if err != nil {
			return err
		}
		return stream.Encrypt(out[headerLen:], plaintext, iv[:])
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrEncryptionFailed, err)
	}

	return out, nil
}

// Decrypt decrypts an envelope under the key it names.
func (c *EnvelopeCipher) Decrypt(envelope []byte) ([]byte, error) {
	if envelope == nil {
		return nil, nil
	}

	env, err := ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}
	if !c.keys.Has(env.KeyRef) {
		return nil, fmt.Errorf("%w: reference %d", cryptoDomain.ErrKeyNotFound, env.KeyRef)
	}

	plaintext := make([]byte, len(env.Payload))
	err = c.keys.withKey(env.KeyRef, func(key []byte) error {
		stream, err := NewAESCFB(key)
		if err != nil {
			return err
		}
		return stream.Decrypt(plaintext, env.Payload, env.IV)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// DecryptString decrypts an envelope and returns the plaintext as a string.
func (c *EnvelopeCipher) DecryptString(envelope []byte) (string, error) {
	plaintext, err := c.Decrypt(envelope)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// KeyRef returns the key reference an envelope was produced under.
func (c *EnvelopeCipher) KeyRef(envelope []byte) (cryptoDomain.KeyRef, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return 0, err
	}
	return env.KeyRef, nil
}

// Rewrap re-encrypts an envelope under the current key.
func (c *EnvelopeCipher) Rewrap(envelope []byte) ([]byte, bool, error) {
	ref, err := c.KeyRef(envelope)
	if err != nil {
		return nil, false, err
	}
	if ref == c.keys.CurrentKeyRef() {
		return envelope, false, nil
	}

	plaintext, err := c.Decrypt(envelope)
	if err != nil {
		return nil, false, err
	}
	defer cryptoDomain.Zero(plaintext)

	out, err := c.encryptWith(c.keys.CurrentKeyRef(), plaintext)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
