package domain

// KeyState is where a durable key sits in its lifecycle relative to the running
// configuration.
type KeyState string

const (
	KeyStateStaged  KeyState = "STAGED"
	KeyStateCurrent KeyState = "CURRENT"
	KeyStateLegacy  KeyState = "LEGACY"
	// KeyStateRetired keys are no longer configured; envelopes under them cannot be
	// decrypted by this process.
	KeyStateRetired KeyState = "RETIRED"
)

// StateOf classifies a durable key reference against a resolution.
func (r *Resolution) StateOf(ref KeyRef) KeyState {
	if ref == r.CurrentKeyRef {
		return KeyStateCurrent
	}
	if _, ok := r.Keys[ref]; !ok {
		return KeyStateRetired
	}
	for _, rk := range r.Resolved {
		if rk.KeyRef == ref && rk.Role == RoleNext {
			return KeyStateStaged
		}
	}
	return KeyStateLegacy
}
