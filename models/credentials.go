// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MasterPasswordAuthenticationData proves knowledge of the master password to
// a remote verifier without revealing it. It is built per request and never
// stored beyond the request that uses it.
type MasterPasswordAuthenticationData struct {
	Salt Salt      `json:"salt"`
	Kdf  KdfConfig `json:"kdf"`

	// MasterPasswordAuthenticationHash is the base64 authorization hash,
	// distinct from any encryption key derived from the same password.
	MasterPasswordAuthenticationHash string `json:"masterPasswordAuthenticationHash"`
}

// MasterPasswordUnlockData is the user key wrapped under a key derived from
// the master password and salt. The wrapped blob is safe to persist remotely
// and cache locally; without the password it is random noise.
type MasterPasswordUnlockData struct {
	Salt Salt      `json:"salt"`
	Kdf  KdfConfig `json:"kdf"`

	// MasterKeyWrappedUserKey is the base64 blob nonce‖ciphertext produced by
	// authenticated encryption, so corrupted or forged values are detected on
	// unwrap instead of being silently misinterpreted.
	MasterKeyWrappedUserKey string `json:"masterKeyWrappedUserKey"`
}

// IsZero reports whether the unlock data has never been populated.
func (d MasterPasswordUnlockData) IsZero() bool {
	return d.Salt.IsZero() && d.MasterKeyWrappedUserKey == ""
}

// PasswordProtectedKeyEnvelope is a wrapped-key container keyed by a low
// entropy unlock factor (a PIN). The envelope carries its own KDF parameters
// and random salt so it can be opened independently of the account KDF.
type PasswordProtectedKeyEnvelope struct {
	Kdf KdfConfig `json:"kdf"`

	// EnvelopeSalt is the base64 random salt generated when the envelope was
	// sealed. Unrelated to the email-derived account salt.
	EnvelopeSalt string `json:"envelopeSalt"`

	// WrappedUserKey is the base64 blob nonce‖ciphertext of the user key
	// under the PIN-derived key.
	WrappedUserKey string `json:"wrappedUserKey"`
}

// IsZero reports whether the envelope has never been populated.
func (e PasswordProtectedKeyEnvelope) IsZero() bool {
	return e.EnvelopeSalt == "" && e.WrappedUserKey == ""
}

// Account is the locally cached account record: everything a client needs to
// unlock besides the secrets the user supplies.
type Account struct {
	UserID UserID    `json:"userId"`
	Email  string    `json:"email"`
	Kdf    KdfConfig `json:"kdf"`

	// UnlockData is the locally cached copy of the remotely persisted
	// master-password unlock data.
	UnlockData MasterPasswordUnlockData `json:"unlockData"`

	// CryptographicState is the opaque wrapped account state handed to the
	// crypto initializer untouched.
	CryptographicState string `json:"cryptographicState"`
}

// Salt returns the account's current salt, derived from its current email.
func (a Account) Salt() Salt {
	return EmailToSalt(a.Email)
}

// LegacyMasterKeys is the deprecated local cache of master-key material kept
// for consumers that have not migrated off it. Derived, never authoritative.
type LegacyMasterKeys struct {
	UserID UserID `json:"userId"`

	// MasterKey is the base64 legacy-format master key.
	MasterKey string `json:"masterKey"`
	// MasterKeyHash is the base64 local-authorization hash of the master key.
	MasterKeyHash string `json:"masterKeyHash"`
}
