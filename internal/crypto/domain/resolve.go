package domain

import (
	"fmt"
	"sort"
)

// ResolvedKey is the outcome of resolving one configured key.
type ResolvedKey struct {
	Slot   string
	Role   KeyRole
	KeyRef KeyRef
	Hash   []byte
	// New is true when the reference was assigned by this resolution.
	New bool
}

// Resolution is the result of reconciling durable key records with configured keys.
type Resolution struct {
	// NewRecords must be persisted before the key set is used.
	NewRecords []*KeyRecord
	// Keys maps every resolved reference to its raw key. Slices alias the KeyMaterial.
	Keys map[KeyRef][]byte
	// Resolved lists every configured key in registry order. The numbered slot that
	// repeats the current key appears with the current key's reference.
	Resolved      []ResolvedKey
	CurrentKeyRef KeyRef
}

// ResolveKeys reconciles the durable key records with the configured key material. It is a
// pure function: it performs no I/O and does not modify its inputs.
//
// Each configured key is hashed; a known hash reuses its durable reference, an unknown
// hash is assigned the next unused reference (max existing + 1, or 0 on an empty store)
// and returned in NewRecords. If the store holds several records for one hash, which can
// only happen after a lost bootstrap race on a store without a unique index, the lowest
// reference wins. Calling ResolveKeys again with the records it produced yields the same
// references and no new records.
func ResolveKeys(records []*KeyRecord, material *KeyMaterial) (*Resolution, error) {
	sorted := make([]*KeyRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].KeyRef < sorted[j].KeyRef })

	existing := make(map[string]KeyRef, len(sorted))
	var nextRef KeyRef
	for _, record := range sorted {
		if _, ok := existing[string(record.KeyHash)]; !ok {
			existing[string(record.KeyHash)] = record.KeyRef
		}
		if record.KeyRef >= nextRef {
			nextRef = record.KeyRef + 1
		}
	}

	res := &Resolution{Keys: make(map[KeyRef][]byte)}
	slotOf := make(map[string]string) // hash -> slot that registered it
	currentRepeated := false
	currentRef, currentResolved := KeyRef(0), false

	for _, ck := range material.Keys() {
		hash := HashKey(ck.Key)

		// The numbered slot carrying the current key designates the same key the
		// current slot already registered.
		if ck.Role == RoleLegacy && material.IsCurrent(ck.Key) && !currentRepeated {
			currentRepeated = true
			res.Resolved = append(res.Resolved, ResolvedKey{
				Slot: ck.Slot, Role: ck.Role, KeyRef: currentRef, Hash: hash,
			})
			continue
		}

		if prev, dup := slotOf[string(hash)]; dup {
			return nil, fmt.Errorf("%w: slots %s and %s", ErrDuplicateKey, prev, ck.Slot)
		}
		slotOf[string(hash)] = ck.Slot

		ref, known := existing[string(hash)]
		if !known {
			ref = nextRef
			nextRef++
			existing[string(hash)] = ref
			res.NewRecords = append(res.NewRecords, NewKeyRecord(ref, hash))
		}

		res.Keys[ref] = ck.Key
		res.Resolved = append(res.Resolved, ResolvedKey{
			Slot: ck.Slot, Role: ck.Role, KeyRef: ref, Hash: hash, New: !known,
		})

		if ck.Role == RoleCurrent {
			currentRef, currentResolved = ref, true
		}
	}

	if len(res.Keys) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientKeys, len(res.Keys))
	}
	if !currentResolved {
		return nil, ErrCurrentKeyNotFound
	}
	res.CurrentKeyRef = currentRef

	return res, nil
}

// Refs returns the resolved references in ascending order.
func (r *Resolution) Refs() []KeyRef {
	refs := make([]KeyRef, 0, len(r.Keys))
	for ref := range r.Keys {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}
