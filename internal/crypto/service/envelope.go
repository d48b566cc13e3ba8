package service

import (
	"fmt"
	"math"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// Envelope is a parsed ciphertext envelope. IV and Payload alias the input buffer.
type Envelope struct {
	Version byte
	KeyRef  cryptoDomain.KeyRef
	IV      []byte
	Payload []byte
}

// EnvelopeSize returns the encoded length of an envelope for the given key reference and
// payload length.
func EnvelopeSize(ref cryptoDomain.KeyRef, payloadLen int) int {
	return 1 + VarintSize(uint64(ref)) + cryptoDomain.IVSize + payloadLen
}

// appendEnvelopeHeader appends [version][varint keyRef][iv] to dst.
func appendEnvelopeHeader(dst []byte, ref cryptoDomain.KeyRef, iv []byte) []byte {
	dst = append(dst, cryptoDomain.FormatVersion)
	dst = AppendVarint(dst, uint64(ref))
	return append(dst, iv...)
}

// ParseEnvelope splits an envelope into its header fields and payload without decrypting.
// It checks the structure only; whether the key reference is configured is the cipher's
// concern.
func ParseEnvelope(data []byte) (*Envelope, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", cryptoDomain.ErrTruncatedEnvelope)
	}

	if data[0] != cryptoDomain.FormatVersion {
		return nil, fmt.Errorf("%w: 0x%02x", cryptoDomain.ErrUnsupportedVersion, data[0])
	}
	offset := 1

	ref, n, err := DecodeVarint(data[offset:])
	if err != nil {
		return nil, err
	}
	if ref > math.MaxUint32 {
		return nil, fmt.Errorf("%w: key reference %d out of range", cryptoDomain.ErrInvalidEnvelope, ref)
	}
	offset += n

	if len(data)-offset < cryptoDomain.IVSize {
		return nil, fmt.Errorf(
			"%w: need %d bytes of IV, have %d", cryptoDomain.ErrTruncatedEnvelope, cryptoDomain.IVSize, len(data)-offset,
		)
	}
	iv := data[offset : offset+cryptoDomain.IVSize]
	offset += cryptoDomain.IVSize

	return &Envelope{
		Version: data[0],
		KeyRef:  cryptoDomain.KeyRef(ref),
		IV:      iv,
		Payload: data[offset:],
	}, nil
}
