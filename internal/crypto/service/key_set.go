package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/awnumar/memguard"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// ErrKeySetClosed indicates the key set was used after Close.
var ErrKeySetClosed = apperrors.New("key set is closed")

// KeySet holds the resolved keys of a running process: every configured key indexed by its
// durable reference, plus which reference is current. It is built once at startup and is
// read-only afterwards.
//
// Key bytes live in memguard locked buffers: they are excluded from swap, guarded by
// canary pages and frozen read-only. Close wipes them.
type KeySet struct {
	mu      sync.RWMutex
	current cryptoDomain.KeyRef
	keys    map[cryptoDomain.KeyRef]*memguard.LockedBuffer
	closed  bool
}

// NewKeySet creates a key set. Key bytes are copied into protected memory; the caller
// keeps ownership of the input slices and should wipe them afterwards.
func NewKeySet(current cryptoDomain.KeyRef, keys map[cryptoDomain.KeyRef][]byte) (*KeySet, error) {
	if _, ok := keys[current]; !ok {
		return nil, fmt.Errorf("%w: reference %d", cryptoDomain.ErrCurrentKeyNotFound, current)
	}

	ks := &KeySet{
		current: current,
		keys:    make(map[cryptoDomain.KeyRef]*memguard.LockedBuffer, len(keys)),
	}
	for ref, key := range keys {
		if err := cryptoDomain.ValidateKeySize(key); err != nil {
			ks.Close()
			return nil, fmt.Errorf("%w (reference %d)", err, ref)
		}

		// NewBufferFromBytes wipes its argument, so hand it a copy.
		b := make([]byte, len(key))
		copy(b, key)
		buf := memguard.NewBufferFromBytes(b)
		buf.Freeze()
		ks.keys[ref] = buf
	}

	return ks, nil
}

// NewKeySetFromResolution builds the key set of a successful resolution.
func NewKeySetFromResolution(res *cryptoDomain.Resolution) (*KeySet, error) {
	return NewKeySet(res.CurrentKeyRef, res.Keys)
}

// CurrentKeyRef returns the reference used for new encryptions.
func (s *KeySet) CurrentKeyRef() cryptoDomain.KeyRef {
	return s.current
}

// Has reports whether ref is configured.
func (s *KeySet) Has(ref cryptoDomain.KeyRef) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[ref]
	return ok
}

// Refs returns every configured reference in ascending order.
func (s *KeySet) Refs() []cryptoDomain.KeyRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := make([]cryptoDomain.KeyRef, 0, len(s.keys))
	for ref := range s.keys {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// Len returns the number of configured keys.
func (s *KeySet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// withKey calls fn with the raw key for ref. The slice is only valid inside fn and must
// not be retained or modified.
func (s *KeySet) withKey(ref cryptoDomain.KeyRef, fn func(key []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrKeySetClosed
	}
	buf, ok := s.keys[ref]
	if !ok {
		return fmt.Errorf("%w: reference %d", cryptoDomain.ErrKeyNotFound, ref)
	}
	return fn(buf.Bytes())
}

// Close destroys every protected buffer. It is safe to call more than once.
func (s *KeySet) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, buf := range s.keys {
		buf.Destroy()
	}
	s.closed = true
}
