package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

func testKey(b byte, size int) []byte {
	return bytes.Repeat([]byte{b}, size)
}

// newTestKeySet returns a key set with reference 0 (current, 16 bytes) and reference 1
// (32 bytes).
func newTestKeySet(t *testing.T) *KeySet {
	t.Helper()

	ks, err := NewKeySet(0, map[cryptoDomain.KeyRef][]byte{
		0: testKey(1, 16),
		1: testKey(2, 32),
	})
	require.NoError(t, err)
	t.Cleanup(ks.Close)
	return ks
}

func TestNewKeySet(t *testing.T) {
	t.Run("copies key bytes", func(t *testing.T) {
		key := testKey(7, 16)
		ks, err := NewKeySet(3, map[cryptoDomain.KeyRef][]byte{3: key, 9: testKey(8, 24)})
		require.NoError(t, err)
		defer ks.Close()

		assert.Equal(t, testKey(7, 16), key, "input must not be wiped")
		assert.Equal(t, cryptoDomain.KeyRef(3), ks.CurrentKeyRef())
		assert.Equal(t, []cryptoDomain.KeyRef{3, 9}, ks.Refs())
		assert.Equal(t, 2, ks.Len())
		assert.True(t, ks.Has(9))
		assert.False(t, ks.Has(4))

		err = ks.withKey(3, func(got []byte) error {
			assert.Equal(t, key, got)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("current not in keys", func(t *testing.T) {
		_, err := NewKeySet(2, map[cryptoDomain.KeyRef][]byte{0: testKey(1, 16)})
		assert.ErrorIs(t, err, cryptoDomain.ErrCurrentKeyNotFound)
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := NewKeySet(0, map[cryptoDomain.KeyRef][]byte{0: testKey(1, 16), 1: testKey(2, 7)})
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestNewKeySetFromResolution(t *testing.T) {
	material, err := cryptoDomain.NewKeyMaterial(testKey(1, 16), nil, testKey(2, 16))
	require.NoError(t, err)
	res, err := cryptoDomain.ResolveKeys(nil, material)
	require.NoError(t, err)

	ks, err := NewKeySetFromResolution(res)
	require.NoError(t, err)
	defer ks.Close()

	assert.Equal(t, res.CurrentKeyRef, ks.CurrentKeyRef())
	assert.Equal(t, res.Refs(), ks.Refs())
}

func TestKeySet_WithKey(t *testing.T) {
	ks := newTestKeySet(t)

	t.Run("unknown reference", func(t *testing.T) {
		err := ks.withKey(42, func([]byte) error { return nil })
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotFound)
	})

	t.Run("closed", func(t *testing.T) {
		closed, err := NewKeySet(0, map[cryptoDomain.KeyRef][]byte{0: testKey(1, 16)})
		require.NoError(t, err)
		closed.Close()
		closed.Close()

		err = closed.withKey(0, func([]byte) error { return nil })
		assert.ErrorIs(t, err, ErrKeySetClosed)
	})
}
