package commands

import (
	"fmt"
	"io"
	"strings"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// RunCreateKey generates a random AES key and prints it ready to stage in the next slot.
// random is normally crypto/rand.Reader. Key material is zeroed after encoding.
func RunCreateKey(w io.Writer, random io.Reader, prefix string, size int, encoding, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	enc, err := cryptoDomain.ParseKeyEncoding(encoding)
	if err != nil {
		return err
	}

	if size < 0 {
		return fmt.Errorf("%w: got %d bytes", cryptoDomain.ErrInvalidKeySize, size)
	}
	key := make([]byte, size)
	defer cryptoDomain.Zero(key)
	if err := cryptoDomain.ValidateKeySize(key); err != nil {
		return err
	}
	if _, err := io.ReadFull(random, key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	encoded := cryptoDomain.EncodeKey(key, enc)
	nextVar := prefix + strings.ToUpper(cryptoDomain.SlotNext)

	if format == "json" {
		return writeJSON(w, map[string]any{
			"key":      encoded,
			"size":     size,
			"encoding": string(enc),
			"env":      nextVar,
		})
	}

	_, _ = fmt.Fprintln(w, "# Stage this key in the next slot, restart, then promote it to current")
	_, _ = fmt.Fprintln(w, "# on a later deploy. Keep the previous current key in a numbered slot.")
	_, _ = fmt.Fprintln(w)
	if enc != cryptoDomain.EncodingBase64 {
		_, _ = fmt.Fprintf(w, "%sENCODING=\"%s\"\n", prefix, enc)
	}
	_, err = fmt.Fprintf(w, "%s=\"%s\"\n", nextVar, encoded)
	return err
}
