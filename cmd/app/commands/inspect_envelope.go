package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoService "github.com/allisson/fieldcrypt/internal/crypto/service"
)

// RunInspectEnvelope prints the header of an encoded envelope. It needs no key material
// and never decrypts the payload.
func RunInspectEnvelope(writer io.Writer, value, encoding, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	enc, err := cryptoDomain.ParseKeyEncoding(encoding)
	if err != nil {
		return err
	}

	data, err := cryptoDomain.DecodeKey(strings.TrimSpace(value), enc)
	if err != nil {
		return fmt.Errorf("failed to decode envelope: value is not valid %s", enc)
	}

	env, err := cryptoService.ParseEnvelope(data)
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"version":        env.Version,
			"key_ref":        uint32(env.KeyRef),
			"iv":             hex.EncodeToString(env.IV),
			"payload_length": len(env.Payload),
			"size":           len(data),
		})
	}

	_, err = fmt.Fprintf(writer,
		"Version:        %d\nKey ref:        %d\nIV:             %s\nPayload length: %d\nSize:           %d\n",
		env.Version, env.KeyRef, hex.EncodeToString(env.IV), len(env.Payload), len(data),
	)
	return err
}
