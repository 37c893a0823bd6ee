package service

import "errors"

var (
	// ErrInvalidInput marks a missing salt, KDF config, password or user key.
	// A precondition failure, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIdentityUnavailable means the current identity cannot be verified
	// because the account record, salt or KDF config cannot be resolved.
	ErrIdentityUnavailable = errors.New("identity unavailable")

	// ErrUserKeyUnavailable means the in-memory user key is absent: the
	// session is locked and the operation needs an unlocked one.
	ErrUserKeyUnavailable = errors.New("user key unavailable")

	// ErrEnvelopeUnavailable means the user has no PIN envelope to unlock
	// with. Surfaced as "use a different unlock method".
	ErrEnvelopeUnavailable = errors.New("pin envelope unavailable")

	// ErrBiometricUnavailable means the platform gate denied or cancelled.
	ErrBiometricUnavailable = errors.New("biometric unlock unavailable")
)
