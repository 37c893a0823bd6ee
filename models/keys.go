package models

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// UserID identifies an account. Values are UUID strings issued by the server.
type UserID string

// NewUserID generates a fresh random UserID. Used by tests and by local
// account bootstrap.
func NewUserID() UserID {
	return UserID(uuid.NewString())
}

func (id UserID) String() string { return string(id) }

// UserKey is the account's primary symmetric key. It exists in plaintext only
// in memory after a successful unlock and is never persisted unencrypted.
type UserKey []byte

// ToBase64 encodes the key for handoff across the crypto-initialization
// boundary.
func (k UserKey) ToBase64() string {
	return base64.StdEncoding.EncodeToString(k)
}

// UserKeyFromBase64 decodes a key produced by [UserKey.ToBase64].
func UserKeyFromBase64(s string) (UserKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return UserKey(raw), nil
}

// MasterKey is key material derived from the master password, salt and KDF
// config. It wraps the user key and feeds the authentication hashes; it is
// never sent to the server.
type MasterKey []byte

// PinLockType selects which PIN envelope variant is stored for a user.
type PinLockType string

const (
	// PinLockPersistent keeps the envelope across restarts.
	PinLockPersistent PinLockType = "PERSISTENT"
	// PinLockEphemeral keeps the envelope for the current process only.
	PinLockEphemeral PinLockType = "EPHEMERAL"
)
