package domain

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// testKey returns a deterministic key of the given size filled with b.
func testKey(b byte, size int) []byte {
	key := make([]byte, size)
	for i := range key {
		key[i] = b
	}
	return key
}

func b64(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

func envFrom(values map[string]string) func(string) string {
	return func(name string) string {
		return values[name]
	}
}

func TestNewKeyMaterial(t *testing.T) {
	t.Run("orders current legacy next", func(t *testing.T) {
		m, err := NewKeyMaterial(
			testKey(1, 16),
			[]ConfiguredKey{{Slot: "0", Key: testKey(2, 16)}, {Slot: "1", Key: testKey(1, 16)}},
			testKey(3, 16),
		)
		require.NoError(t, err)

		keys := m.Keys()
		require.Len(t, keys, 4)
		assert.Equal(t, SlotCurrent, keys[0].Slot)
		assert.Equal(t, RoleCurrent, keys[0].Role)
		assert.Equal(t, "0", keys[1].Slot)
		assert.Equal(t, RoleLegacy, keys[1].Role)
		assert.Equal(t, RoleLegacy, keys[2].Role)
		assert.Equal(t, SlotNext, keys[3].Slot)
		assert.Equal(t, RoleNext, keys[3].Role)
		assert.Equal(t, testKey(1, 16), m.Current())
		assert.Equal(t, testKey(3, 16), m.Next())
		assert.True(t, m.IsCurrent(testKey(1, 16)))
	})

	t.Run("blank current", func(t *testing.T) {
		_, err := NewKeyMaterial(nil, nil, testKey(3, 16))
		assert.ErrorIs(t, err, ErrKeySlotBlank)
		assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
	})

	t.Run("blank next", func(t *testing.T) {
		_, err := NewKeyMaterial(testKey(1, 16), nil, []byte{})
		assert.ErrorIs(t, err, ErrKeySlotBlank)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := NewKeyMaterial(testKey(1, 16), []ConfiguredKey{{Slot: "0", Key: testKey(2, 10)}}, testKey(3, 32))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.Contains(t, err.Error(), "slot 0")
	})

	t.Run("close wipes keys", func(t *testing.T) {
		current := testKey(1, 16)
		next := testKey(3, 16)
		m, err := NewKeyMaterial(current, nil, next)
		require.NoError(t, err)

		m.Close()

		assert.Equal(t, make([]byte, 16), current)
		assert.Equal(t, make([]byte, 16), next)
		assert.Empty(t, m.Keys())
	})
}

func TestDecodeKey(t *testing.T) {
	key := testKey(0xab, 16)

	t.Run("base64", func(t *testing.T) {
		got, err := DecodeKey(b64(key), EncodingBase64)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("hex", func(t *testing.T) {
		got, err := DecodeKey(hex.EncodeToString(key), EncodingHex)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("round trip through EncodeKey", func(t *testing.T) {
		for _, enc := range []KeyEncoding{EncodingBase64, EncodingHex} {
			got, err := DecodeKey(EncodeKey(key, enc), enc)
			require.NoError(t, err)
			assert.Equal(t, key, got)
		}
	})

	t.Run("invalid value does not leak input", func(t *testing.T) {
		_, err := DecodeKey("not-hex-secret", EncodingHex)
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
		assert.NotContains(t, err.Error(), "secret")
	})
}

func TestParseKeyEncoding(t *testing.T) {
	enc, err := ParseKeyEncoding("")
	require.NoError(t, err)
	assert.Equal(t, EncodingBase64, enc)

	enc, err = ParseKeyEncoding(" HEX ")
	require.NoError(t, err)
	assert.Equal(t, EncodingHex, enc)

	_, err = ParseKeyEncoding("base32")
	assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
}

func TestLoadKeyMaterial(t *testing.T) {
	prefix := DefaultKeyEnvPrefix
	k1, k2, k3, k4 := testKey(1, 16), testKey(2, 16), testKey(3, 16), testKey(4, 32)

	t.Run("current and next only", func(t *testing.T) {
		m, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "NEXT":    b64(k2),
		}), prefix)
		require.NoError(t, err)

		keys := m.Keys()
		require.Len(t, keys, 2)
		assert.Equal(t, k1, keys[0].Key)
		assert.Equal(t, k2, keys[1].Key)
	})

	t.Run("numbered slots with pair", func(t *testing.T) {
		m, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "0":       b64(k3) + "|" + b64(k4),
			prefix + "1":       b64(k1),
			prefix + "NEXT":    b64(k2),
		}), prefix)
		require.NoError(t, err)

		keys := m.Keys()
		require.Len(t, keys, 5)
		assert.Equal(t, "0", keys[1].Slot)
		assert.Equal(t, k3, keys[1].Key)
		assert.Equal(t, "0", keys[2].Slot)
		assert.Equal(t, k4, keys[2].Key)
		assert.Equal(t, "1", keys[3].Slot)
	})

	// Slots after the one that matches the current key are still loaded.
	t.Run("loads slots after the current key", func(t *testing.T) {
		m, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "0":       b64(k1),
			prefix + "1":       b64(k3),
			prefix + "NEXT":    b64(k2),
		}), prefix)
		require.NoError(t, err)

		keys := m.Keys()
		require.Len(t, keys, 4)
		assert.Equal(t, "1", keys[2].Slot)
		assert.Equal(t, k3, keys[2].Key)
	})

	t.Run("scan stops at first unset slot", func(t *testing.T) {
		m, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "0":       b64(k3),
			prefix + "2":       b64(k4),
			prefix + "NEXT":    b64(k2),
		}), prefix)
		require.NoError(t, err)
		assert.Len(t, m.Keys(), 3)
	})

	t.Run("hex encoding", func(t *testing.T) {
		m, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "ENCODING": "hex",
			prefix + "CURRENT":  hex.EncodeToString(k1),
			prefix + "NEXT":     hex.EncodeToString(k2),
		}), prefix)
		require.NoError(t, err)
		assert.Equal(t, k1, m.Current())
	})

	t.Run("missing current", func(t *testing.T) {
		_, err := LoadKeyMaterial(envFrom(map[string]string{prefix + "NEXT": b64(k2)}), prefix)
		assert.ErrorIs(t, err, ErrKeySlotBlank)
		assert.Contains(t, err.Error(), SlotCurrent)
	})

	t.Run("blank next", func(t *testing.T) {
		_, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "NEXT":    "   ",
		}), prefix)
		assert.ErrorIs(t, err, ErrKeySlotBlank)
		assert.Contains(t, err.Error(), SlotNext)
	})

	t.Run("too many keys in slot", func(t *testing.T) {
		_, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "0":       b64(k1) + "|" + b64(k3) + "|" + b64(k4),
			prefix + "NEXT":    b64(k2),
		}), prefix)
		assert.ErrorIs(t, err, ErrInvalidKeySlot)
	})

	t.Run("empty entry in slot", func(t *testing.T) {
		_, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "0":       b64(k3) + "|",
			prefix + "NEXT":    b64(k2),
		}), prefix)
		assert.ErrorIs(t, err, ErrInvalidKeySlot)
	})

	t.Run("undecodable slot", func(t *testing.T) {
		_, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "CURRENT": b64(k1),
			prefix + "0":       "%%%",
			prefix + "NEXT":    b64(k2),
		}), prefix)
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := LoadKeyMaterial(envFrom(map[string]string{
			prefix + "ENCODING": "base32",
			prefix + "CURRENT":  b64(k1),
			prefix + "NEXT":     b64(k2),
		}), prefix)
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
	})

	t.Run("from process environment", func(t *testing.T) {
		t.Setenv("TESTKEYS_CURRENT", b64(k1))
		t.Setenv("TESTKEYS_NEXT", b64(k2))

		m, err := LoadKeyMaterialFromEnv("TESTKEYS_")
		require.NoError(t, err)
		assert.Equal(t, k2, m.Next())
	})
}
