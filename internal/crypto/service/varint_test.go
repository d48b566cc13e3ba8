package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

func TestVarint(t *testing.T) {
	tests := []struct {
		name    string
		value   uint64
		encoded []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"largest single byte", 127, []byte{0x7f}},
		{"smallest two bytes", 128, []byte{0x80, 0x01}},
		{"300", 300, []byte{0xac, 0x02}},
		{"largest two bytes", 16383, []byte{0xff, 0x7f}},
		{"smallest three bytes", 16384, []byte{0x80, 0x80, 0x01}},
		{"max int32", math.MaxInt32, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"max uint32", math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeVarint(tt.value)
			assert.Equal(t, tt.encoded, encoded)
			assert.Equal(t, len(tt.encoded), VarintSize(tt.value))

			value, n, err := DecodeVarint(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, len(encoded), n)
		})
	}
}

func TestVarint_MinimalLength(t *testing.T) {
	for shift := 0; shift < 64; shift++ {
		v := uint64(1) << shift
		want := shift/7 + 1
		assert.Equal(t, want, len(EncodeVarint(v)), "value 1<<%d", shift)
		assert.Equal(t, want, VarintSize(v))
	}

	encoded := EncodeVarint(math.MaxUint64)
	assert.Len(t, encoded, MaxVarintLen)
	value, n, err := DecodeVarint(encoded)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), value)
	assert.Equal(t, MaxVarintLen, n)
}

func TestVarint_RoundTripSweep(t *testing.T) {
	for v := uint64(0); v <= math.MaxInt32; v = v*3 + 1 {
		value, _, err := DecodeVarint(EncodeVarint(v))
		require.NoError(t, err)
		require.Equal(t, v, value)
	}
}

func TestAppendVarint(t *testing.T) {
	buf := AppendVarint([]byte{0xaa}, 300)
	assert.Equal(t, []byte{0xaa, 0xac, 0x02}, buf)
}

func TestDecodeVarint_Trailing(t *testing.T) {
	value, n, err := DecodeVarint([]byte{0xac, 0x02, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, uint64(300), value)
	assert.Equal(t, 2, n)
}

func TestDecodeVarint_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, _, err := DecodeVarint(nil)
		assert.ErrorIs(t, err, ErrVarintTruncated)
		assert.ErrorIs(t, err, cryptoDomain.ErrTruncatedEnvelope)
	})

	t.Run("continuation bit on last byte", func(t *testing.T) {
		_, _, err := DecodeVarint([]byte{0x80, 0x80})
		assert.ErrorIs(t, err, ErrVarintTruncated)
	})

	t.Run("overflow", func(t *testing.T) {
		_, _, err := DecodeVarint([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02})
		assert.ErrorIs(t, err, ErrVarintOverflow)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEnvelope)
	})
}
