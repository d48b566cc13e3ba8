package domain

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// KeyRole is the position a configured key occupies in the rotation.
type KeyRole string

const (
	// RoleCurrent marks the key used for all new encryptions.
	RoleCurrent KeyRole = "current"

	// RoleLegacy marks a numbered slot key kept to decrypt older data. The numbered slot
	// that carries the current key also has this role.
	RoleLegacy KeyRole = "legacy"

	// RoleNext marks the key staged for the following rotation.
	RoleNext KeyRole = "next"
)

// ConfiguredKey is one raw key as supplied by a configuration slot.
type ConfiguredKey struct {
	Slot string
	Role KeyRole
	Key  []byte
}

// KeyMaterial is the ordered list of raw keys handed to the key registry: the current key
// first, then every numbered slot in order, then the next key. Where the keys come from
// (environment, .env file, secret store) is the loader's concern; the registry only sees
// this list.
type KeyMaterial struct {
	keys []ConfiguredKey
}

// NewKeyMaterial validates and orders raw key material. Key bytes are referenced, not
// copied; call Close to wipe them once the key set has been built.
func NewKeyMaterial(current []byte, legacy []ConfiguredKey, next []byte) (*KeyMaterial, error) {
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeySlotBlank, SlotCurrent)
	}
	if len(next) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeySlotBlank, SlotNext)
	}

	keys := make([]ConfiguredKey, 0, len(legacy)+2)
	keys = append(keys, ConfiguredKey{Slot: SlotCurrent, Role: RoleCurrent, Key: current})
	for _, k := range legacy {
		k.Role = RoleLegacy
		keys = append(keys, k)
	}
	keys = append(keys, ConfiguredKey{Slot: SlotNext, Role: RoleNext, Key: next})

	for _, k := range keys {
		if err := ValidateKeySize(k.Key); err != nil {
			return nil, fmt.Errorf("%w (slot %s)", err, k.Slot)
		}
	}

	return &KeyMaterial{keys: keys}, nil
}

// Keys returns the configured keys in registry order.
func (m *KeyMaterial) Keys() []ConfiguredKey {
	return m.keys
}

// Current returns the raw current key.
func (m *KeyMaterial) Current() []byte {
	return m.keys[0].Key
}

// Next returns the raw next key.
func (m *KeyMaterial) Next() []byte {
	return m.keys[len(m.keys)-1].Key
}

// IsCurrent reports whether key is byte-identical to the current key.
func (m *KeyMaterial) IsCurrent(key []byte) bool {
	return bytes.Equal(m.Current(), key)
}

// Close wipes every raw key held by the material.
func (m *KeyMaterial) Close() {
	for _, k := range m.keys {
		Zero(k.Key)
	}
	m.keys = nil
}

// ValidateKeySize accepts AES-128, AES-192 and AES-256 key lengths.
func ValidateKeySize(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}
}

// ParseKeyEncoding parses an encoding name; an empty name selects base64.
func ParseKeyEncoding(s string) (KeyEncoding, error) {
	switch KeyEncoding(strings.ToLower(strings.TrimSpace(s))) {
	case "", EncodingBase64:
		return EncodingBase64, nil
	case EncodingHex:
		return EncodingHex, nil
	default:
		return "", fmt.Errorf("%w: unknown encoding %q", ErrInvalidKeyEncoding, s)
	}
}

// DecodeKey decodes one key slot value.
func DecodeKey(value string, encoding KeyEncoding) ([]byte, error) {
	var (
		key []byte
		err error
	)
	switch encoding {
	case EncodingBase64:
		key, err = base64.StdEncoding.DecodeString(value)
	case EncodingHex:
		key, err = hex.DecodeString(value)
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrInvalidKeyEncoding, encoding)
	}
	if err != nil {
		// The decoder error may quote input bytes; do not propagate it.
		return nil, fmt.Errorf("%w: value is not valid %s", ErrInvalidKeyEncoding, encoding)
	}
	return key, nil
}

// EncodeKey is the inverse of DecodeKey.
func EncodeKey(key []byte, encoding KeyEncoding) string {
	if encoding == EncodingHex {
		return hex.EncodeToString(key)
	}
	return base64.StdEncoding.EncodeToString(key)
}

// LoadKeyMaterialFromEnv loads key material from the process environment.
func LoadKeyMaterialFromEnv(prefix string) (*KeyMaterial, error) {
	return LoadKeyMaterial(os.Getenv, prefix)
}

// LoadKeyMaterial reads key slots through getenv.
//
// Slots, for prefix FIELDCRYPT_KEY_:
//
//	FIELDCRYPT_KEY_ENCODING  base64 (default) or hex
//	FIELDCRYPT_KEY_CURRENT   required
//	FIELDCRYPT_KEY_0 ...     numbered legacy slots, read up to the first unset slot
//	FIELDCRYPT_KEY_NEXT      required
//
// A numbered slot may carry two keys separated by "|"; both are registered under that
// slot. Every numbered slot is loaded, including slots listed after the one that carries
// the current key.
func LoadKeyMaterial(getenv func(string) string, prefix string) (*KeyMaterial, error) {
	encoding, err := ParseKeyEncoding(getenv(prefix + "ENCODING"))
	if err != nil {
		return nil, err
	}

	var loaded [][]byte
	fail := func(err error) (*KeyMaterial, error) {
		Zero(loaded...)
		return nil, err
	}

	readSlot := func(slot string) ([]byte, error) {
		value := strings.TrimSpace(getenv(prefix + strings.ToUpper(slot)))
		if value == "" {
			return nil, fmt.Errorf("%w: %s", ErrKeySlotBlank, slot)
		}
		key, err := DecodeKey(value, encoding)
		if err != nil {
			return nil, fmt.Errorf("%w (slot %s)", err, slot)
		}
		loaded = append(loaded, key)
		return key, nil
	}

	current, err := readSlot(SlotCurrent)
	if err != nil {
		return fail(err)
	}

	var legacy []ConfiguredKey
	for i := range MaxKeySlots {
		slot := strconv.Itoa(i)
		value := strings.TrimSpace(getenv(prefix + slot))
		if value == "" {
			break
		}

		parts := strings.Split(value, SlotKeyDelimiter)
		if len(parts) > 2 {
			return fail(fmt.Errorf("%w: slot %s holds %d keys, at most 2 allowed", ErrInvalidKeySlot, slot, len(parts)))
		}
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				return fail(fmt.Errorf("%w: slot %s has an empty entry", ErrInvalidKeySlot, slot))
			}
			key, err := DecodeKey(part, encoding)
			if err != nil {
				return fail(fmt.Errorf("%w (slot %s)", err, slot))
			}
			loaded = append(loaded, key)
			legacy = append(legacy, ConfiguredKey{Slot: slot, Role: RoleLegacy, Key: key})
		}
	}

	next, err := readSlot(SlotNext)
	if err != nil {
		return fail(err)
	}

	material, err := NewKeyMaterial(current, legacy, next)
	if err != nil {
		return fail(err)
	}
	return material, nil
}
