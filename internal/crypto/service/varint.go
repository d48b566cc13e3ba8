package service

import (
	"encoding/binary"
	"fmt"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// MaxVarintLen is the longest encoding of a 64-bit value.
const MaxVarintLen = binary.MaxVarintLen64

var (
	// ErrVarintTruncated indicates the buffer ends inside a varint.
	ErrVarintTruncated = fmt.Errorf("%w: varint", cryptoDomain.ErrTruncatedEnvelope)

	// ErrVarintOverflow indicates a varint longer than 64 bits.
	ErrVarintOverflow = fmt.Errorf("%w: varint overflows 64 bits", cryptoDomain.ErrInvalidEnvelope)
)

// AppendVarint appends the unsigned varint encoding of v to dst: seven data bits per
// byte, least significant group first, high bit set on every byte but the last.
func AppendVarint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// EncodeVarint returns the minimal varint encoding of v.
func EncodeVarint(v uint64) []byte {
	return AppendVarint(make([]byte, 0, VarintSize(v)), v)
}

// VarintSize returns the number of bytes EncodeVarint(v) produces.
func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// DecodeVarint reads a varint from the start of buf and returns the value and the number
// of bytes consumed.
func DecodeVarint(buf []byte) (uint64, int, error) {
	v, n := binary.Uvarint(buf)
	switch {
	case n == 0:
		return 0, 0, ErrVarintTruncated
	case n < 0:
		return 0, 0, ErrVarintOverflow
	}
	return v, n, nil
}
