package models

import "errors"

var ErrAmbiguousUnlockMethod = errors.New("exactly one unlock method must be set")

// PinEnvelopeMethod unlocks with a PIN against a stored envelope.
type PinEnvelopeMethod struct {
	Pin                         string
	PinProtectedUserKeyEnvelope PasswordProtectedKeyEnvelope
}

// MasterPasswordUnlockMethod unlocks with the master password against cached
// unlock data.
type MasterPasswordUnlockMethod struct {
	Password             string
	MasterPasswordUnlock MasterPasswordUnlockData
}

// DecryptedKeyMethod hands over an already-decrypted user key, e.g. released
// by a platform biometric gate.
type DecryptedKeyMethod struct {
	// DecryptedUserKey is the base64 user key.
	DecryptedUserKey string
}

// UnlockMethod is the discriminated unlock payload accepted by the crypto
// initializer. Exactly one variant must be non-nil.
type UnlockMethod struct {
	PinEnvelope          *PinEnvelopeMethod
	MasterPasswordUnlock *MasterPasswordUnlockMethod
	DecryptedKey         *DecryptedKeyMethod
}

// Validate checks that exactly one variant is set.
func (m UnlockMethod) Validate() error {
	set := 0
	if m.PinEnvelope != nil {
		set++
	}
	if m.MasterPasswordUnlock != nil {
		set++
	}
	if m.DecryptedKey != nil {
		set++
	}
	if set != 1 {
		return ErrAmbiguousUnlockMethod
	}
	return nil
}
