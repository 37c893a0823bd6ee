// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side application logic of the unlock and
// key-rotation core: master-password credential building, the email-change
// orchestrator and the unlock strategies.
package service

import (
	"context"

	"github.com/MKhiriev/go-unlock-core/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// MasterPasswordService builds and caches master-password credentials. All
// derivation is delegated to the key service; this layer adds account lookups
// and input validation.
type MasterPasswordService interface {
	// SaltForUser resolves the account's current salt, derived from its
	// current email.
	SaltForUser(ctx context.Context, userID models.UserID) (models.Salt, error)

	// MakeMasterPasswordAuthenticationData derives the authentication data
	// proving knowledge of the password under the given salt. Returns
	// ErrInvalidInput (wrapped) if the password is empty or the salt or KDF
	// config is unset.
	MakeMasterPasswordAuthenticationData(ctx context.Context, password string, kdf models.KdfConfig, salt models.Salt) (models.MasterPasswordAuthenticationData, error)

	// MakeMasterPasswordUnlockData wraps userKey under a key derived from the
	// password and salt. Returns ErrInvalidInput (wrapped) on missing
	// arguments and a wrap error if encryption fails.
	MakeMasterPasswordUnlockData(ctx context.Context, password string, kdf models.KdfConfig, salt models.Salt, userKey models.UserKey) (models.MasterPasswordUnlockData, error)

	// MasterPasswordUnlockData returns the locally cached unlock data for the
	// user. Returns ErrIdentityUnavailable (wrapped) if none is cached.
	MasterPasswordUnlockData(ctx context.Context, userID models.UserID) (models.MasterPasswordUnlockData, error)

	// SetLegacyMasterKeyFromUnlockData re-derives the old-format master key
	// from the password and the unlock data's salt and KDF config, and
	// overwrites the legacy cache entries with it. Idempotent: the same
	// inputs always produce the same cached values. Scheduled for deletion
	// together with the last legacy consumer.
	SetLegacyMasterKeyFromUnlockData(ctx context.Context, userID models.UserID, password string, unlockData models.MasterPasswordUnlockData) error
}

// ChangeCredentials bundles a prepared email-change request with the derived
// artifacts its source needs again at commit time.
type ChangeCredentials struct {
	Request models.EmailChangeRequest

	NewEmail string

	// UnlockData is the new-salt unlock data. Zero for the legacy source,
	// which predates separate unlock data.
	UnlockData models.MasterPasswordUnlockData

	// legacyMasterKey carries the newly derived old-format master key from
	// derivation to commit so it is not derived twice.
	legacyMasterKey models.MasterKey
}

// CredentialSource derives the wire credentials for the email-change flow.
// Two implementations exist, the rotated-credentials format and the legacy
// format; the orchestrator selects one per invocation from a feature flag and
// never mixes them within a call.
type CredentialSource interface {
	// TokenRequest builds the body of the token request, proving identity
	// under the account's existing salt.
	TokenRequest(ctx context.Context, account models.Account, password, newEmail string) (models.EmailTokenRequest, error)

	// ChangeCredentials proves identity under the existing salt and derives
	// the full credential set under the new-email salt. Returns
	// ErrUserKeyUnavailable (wrapped) if the session is locked.
	ChangeCredentials(ctx context.Context, account models.Account, password, newEmail, token string) (ChangeCredentials, error)

	// Commit writes the locally cached state implied by a server-accepted
	// change request. Called only after the remote accepted the request.
	Commit(ctx context.Context, account models.Account, password string, creds ChangeCredentials) error
}

// ChangeEmailService is the key-rotation orchestrator. Each operation is a
// self-contained linear sequence; no state is carried between calls.
type ChangeEmailService interface {
	// RequestChangeToken proves identity under the current salt and asks the
	// server to mail a verification token to newEmail.
	RequestChangeToken(ctx context.Context, userID models.UserID, password, newEmail string) error

	// ConfirmChange verifies identity, derives the new-salt credentials,
	// submits them and, only after the server durably accepted them, commits
	// the local caches. A remote failure propagates unchanged and leaves
	// local state untouched.
	ConfirmChange(ctx context.Context, userID models.UserID, password, newEmail, token string) error
}

// UnlockService establishes a decrypted session from one of three proofs of
// possession. All strategies converge on the same crypto initialization step.
type UnlockService interface {
	// UnlockWithPin unwraps the user key from the stored PIN envelope. The
	// envelope variant (persistent or ephemeral) follows the user's lock-type
	// setting. Returns ErrEnvelopeUnavailable (wrapped) if the user never
	// enrolled in PIN unlock.
	UnlockWithPin(ctx context.Context, userID models.UserID, pin string) error

	// UnlockWithMasterPassword unwraps the user key from the cached unlock
	// data. A wrong password surfaces as a decryption failure with no hint of
	// which step rejected it. On success the legacy cache is refreshed so
	// older local state stays consistent.
	UnlockWithMasterPassword(ctx context.Context, userID models.UserID, password string) error

	// UnlockWithBiometrics asks the platform gate for the decrypted user key
	// and installs it without any password-derived unwrap. Returns
	// ErrBiometricUnavailable (wrapped) if the platform denies or cancels.
	UnlockWithBiometrics(ctx context.Context, userID models.UserID) error
}

// BiometricsService is the platform biometric gate.
type BiometricsService interface {
	// UnlockWithBiometricsForUser prompts the platform and, on approval,
	// returns the already-decrypted user key.
	UnlockWithBiometricsForUser(ctx context.Context, userID models.UserID) (models.UserKey, error)
}

// FlagSource answers named feature-flag lookups. Implementations must
// re-evaluate on every call so a flag flip takes effect on the next
// operation, never mid-operation.
type FlagSource interface {
	Enabled(ctx context.Context, flag string) bool
}
