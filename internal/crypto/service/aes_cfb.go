package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// AESCFBCipher implements the StreamCipher interface using AES in CFB mode with no padding.
//
// CFB turns the block cipher into a self-synchronizing stream cipher, so the ciphertext is
// exactly as long as the plaintext. Key length selects AES-128, AES-192 or AES-256.
//
// CFB provides confidentiality only. There is no authentication tag: a modified envelope
// decrypts to modified plaintext without error. The mode is kept because envelopes already
// stored in application data were produced with it.
//
// Thread safety:
//
//	The underlying cipher.Block is safe for concurrent use. A fresh stream is created for
//	every call, so one instance may serve many goroutines.
type AESCFBCipher struct {
	block cipher.Block
}

// NewAESCFB creates an AES-CFB cipher for a 16, 24 or 32 byte key.
func NewAESCFB(key []byte) (*AESCFBCipher, error) {
	if err := cryptoDomain.ValidateKeySize(key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	return &AESCFBCipher{block: block}, nil
}

// Encrypt writes the encryption of src into dst. dst and src must be the same length and
// may overlap entirely. iv must be IVSize bytes.
func (a *AESCFBCipher) Encrypt(dst, src, iv []byte) error {
	if err := a.check(dst, src, iv); err != nil {
		return err
	}
	//nolint:staticcheck // CFB is required to read and write the existing envelope format.
	cipher.NewCFBEncrypter(a.block, iv).XORKeyStream(dst, src)
	return nil
}

// Decrypt writes the decryption of src into dst. dst and src must be the same length and
// may overlap entirely. iv must be IVSize bytes.
func (a *AESCFBCipher) Decrypt(dst, src, iv []byte) error {
	if err := a.check(dst, src, iv); err != nil {
		return err
	}
	//nolint:staticcheck // CFB is required to read and write the existing envelope format.
	cipher.NewCFBDecrypter(a.block, iv).XORKeyStream(dst, src)
	return nil
}

func (a *AESCFBCipher) check(dst, src, iv []byte) error {
	if len(iv) != a.block.BlockSize() {
		return fmt.Errorf("invalid IV length %d, want %d", len(iv), a.block.BlockSize())
	}
	if len(dst) != len(src) {
		return fmt.Errorf("destination length %d does not match source length %d", len(dst), len(src))
	}
	return nil
}
