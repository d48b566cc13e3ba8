package service

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	"github.com/allisson/fieldcrypt/internal/metrics"
)

// cipherWithMetrics decorates Cipher with metrics instrumentation.
type cipherWithMetrics struct {
	next    Cipher
	metrics metrics.BusinessMetrics
}

// NewCipherWithMetrics wraps a Cipher with metrics recording.
func NewCipherWithMetrics(c Cipher, m metrics.BusinessMetrics) Cipher {
	return &cipherWithMetrics{
		next:    c,
		metrics: m,
	}
}

func (c *cipherWithMetrics) record(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	// Cipher calls carry no context; metrics are recorded against the background context.
	ctx := context.Background()
	c.metrics.RecordOperation(ctx, "crypto", operation, status)
	c.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}

// Encrypt records metrics for envelope encryption.
func (c *cipherWithMetrics) Encrypt(plaintext []byte) ([]byte, error) {
	start := time.Now()
	out, err := c.next.Encrypt(plaintext)
	c.record("envelope_encrypt", start, err)
	return out, err
}

// EncryptString records metrics for envelope encryption.
func (c *cipherWithMetrics) EncryptString(s string) ([]byte, error) {
	start := time.Now()
	out, err := c.next.EncryptString(s)
	c.record("envelope_encrypt", start, err)
	return out, err
}

// Decrypt records metrics for envelope decryption.
func (c *cipherWithMetrics) Decrypt(envelope []byte) ([]byte, error) {
	start := time.Now()
	out, err := c.next.Decrypt(envelope)
	c.record("envelope_decrypt", start, err)
	return out, err
}

// DecryptString records metrics for envelope decryption.
func (c *cipherWithMetrics) DecryptString(envelope []byte) (string, error) {
	start := time.Now()
	out, err := c.next.DecryptString(envelope)
	c.record("envelope_decrypt", start, err)
	return out, err
}

// KeyRef is not instrumented.
func (c *cipherWithMetrics) KeyRef(envelope []byte) (cryptoDomain.KeyRef, error) {
	return c.next.KeyRef(envelope)
}

// Rewrap records metrics for envelope rewrapping.
func (c *cipherWithMetrics) Rewrap(envelope []byte) ([]byte, bool, error) {
	start := time.Now()
	out, changed, err := c.next.Rewrap(envelope)
	c.record("envelope_rewrap", start, err)
	return out, changed, err
}

// CurrentKeyRef is not instrumented.
func (c *cipherWithMetrics) CurrentKeyRef() cryptoDomain.KeyRef {
	return c.next.CurrentKeyRef()
}
