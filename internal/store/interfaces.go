// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the client-side persistence for the unlock and
// key-rotation core: the sqlite credential cache (account record, PIN
// envelopes, legacy master-key material) and the in-memory session store for
// decrypted user keys.
package store

import (
	"context"

	"github.com/MKhiriev/go-unlock-core/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountStore is the locally cached account record: email, KDF config and
// the cached copy of the remotely persisted unlock data. Everything in it is
// ciphertext or public parameters; no plaintext secret is ever stored.
type AccountStore interface {
	// Account returns the cached account record for userID.
	// Returns ErrAccountNotFound (wrapped) if the user is unknown.
	Account(ctx context.Context, userID models.UserID) (models.Account, error)

	// SaveAccount inserts or replaces the cached account record.
	SaveAccount(ctx context.Context, account models.Account) error

	// KdfConfig resolves the account's key-derivation parameters.
	KdfConfig(ctx context.Context, userID models.UserID) (models.KdfConfig, error)

	// SaltForUser resolves the account's current salt, derived from its
	// current email. Independent of any email change in flight.
	SaltForUser(ctx context.Context, userID models.UserID) (models.Salt, error)

	// MasterPasswordUnlockData returns the cached unlock data for userID.
	MasterPasswordUnlockData(ctx context.Context, userID models.UserID) (models.MasterPasswordUnlockData, error)
}

// PinEnvelopeStore keeps PIN-protected user-key envelopes. Persistent
// envelopes survive restarts; ephemeral ones live for the current process
// only. Which variant a user gets is a per-user setting.
type PinEnvelopeStore interface {
	// PinLockType returns the envelope variant configured for userID.
	// Returns ErrPinNotEnrolled (wrapped) if the user never enrolled.
	PinLockType(ctx context.Context, userID models.UserID) (models.PinLockType, error)

	// SavePinProtectedUserKeyEnvelope stores the envelope under the given
	// lock type and records the lock type as the user's current setting.
	SavePinProtectedUserKeyEnvelope(ctx context.Context, userID models.UserID, lockType models.PinLockType, envelope models.PasswordProtectedKeyEnvelope) error

	// PinProtectedUserKeyEnvelope fetches the envelope stored under the
	// given lock type. Returns ErrEnvelopeNotFound (wrapped) if absent.
	PinProtectedUserKeyEnvelope(ctx context.Context, userID models.UserID, lockType models.PinLockType) (models.PasswordProtectedKeyEnvelope, error)
}

// LegacyKeyStore caches legacy-format master-key material for consumers that
// have not migrated off it. Scheduled for deletion with those consumers.
type LegacyKeyStore interface {
	// SetLegacyMasterKeys overwrites the cached legacy material for the
	// user. Last writer wins; callers only write server-accepted data.
	SetLegacyMasterKeys(ctx context.Context, keys models.LegacyMasterKeys) error

	// LegacyMasterKeys returns the cached legacy material.
	// Returns ErrLegacyKeysNotFound (wrapped) if absent.
	LegacyMasterKeys(ctx context.Context, userID models.UserID) (models.LegacyMasterKeys, error)
}

// SessionStore holds decrypted user keys for active sessions, in memory
// only. It is the single shared-mutable-state hazard in the core: writes are
// atomic per user and last-writer-wins.
type SessionStore interface {
	// SetUserKey installs the decrypted user key for the session.
	SetUserKey(userID models.UserID, key models.UserKey)

	// UserKey returns the session's user key, or false if the session is
	// locked.
	UserKey(userID models.UserID) (models.UserKey, bool)

	// Clear drops the session key, locking the session.
	Clear(userID models.UserID)
}
