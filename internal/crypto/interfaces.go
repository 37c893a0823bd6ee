package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/master_key_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-unlock-core/models"
)

// MasterKeyService owns every password-derived primitive in the unlock and
// key-rotation flows. It knows nothing about the network, storage or users;
// its single job is deriving and protecting keys.
//
// Derivation scheme:
//
//	MasterKey = KDF(password, SHA-256(salt), kdf)      (structured path)
//	AuthHash  = PBKDF2(MasterKey, password, 1)         (sent to the server)
//	LocalHash = PBKDF2(MasterKey, password, 2)         (kept on the client)
//	Wrapped   = AES-256-GCM(HKDF(MasterKey), UserKey)  (nonce ‖ ciphertext)
type MasterKeyService interface {
	// DeriveMasterKey derives the master key from the password, the
	// email-derived salt and the account KDF config. The salt is normalized
	// by construction and domain-separated through SHA-256 before it reaches
	// the KDF. Returns ErrUnsupportedKdf (wrapped) for an invalid config.
	DeriveMasterKey(ctx context.Context, password string, salt models.Salt, kdf models.KdfConfig) (models.MasterKey, error)

	// DeriveLegacyMasterKey derives a master key the old way: the raw
	// password and salt bytes are fed straight into the KDF with no
	// normalization or domain separation. It exists only to keep the
	// deprecated local master-key cache compatible with not-yet-migrated
	// consumers and is deleted together with them. The divergence from
	// DeriveMasterKey is intentional; do not unify the two.
	DeriveLegacyMasterKey(ctx context.Context, password, salt []byte, kdf models.KdfConfig) (models.MasterKey, error)

	// AuthenticationHash computes the non-reversible server-authorization
	// hash of the master key. Distinct from any encryption key derived from
	// the same material.
	AuthenticationHash(masterKey models.MasterKey, password string) []byte

	// LocalAuthorizationHash computes the local-authorization hash used by
	// the legacy master-key-hash cache. Uses a different stretch count than
	// AuthenticationHash so the two values never collide.
	LocalAuthorizationHash(masterKey models.MasterKey, password string) []byte

	// GenerateUserKey reads a fresh 256-bit user key from the OS CSPRNG.
	GenerateUserKey() (models.UserKey, error)

	// WrapUserKey encrypts the user key under the master key with
	// authenticated encryption. The blob layout is nonce ‖ ciphertext.
	// Returns ErrWrapFailed (wrapped) if encryption fails.
	WrapUserKey(userKey models.UserKey, masterKey models.MasterKey) ([]byte, error)

	// UnwrapUserKey decrypts a blob produced by WrapUserKey. Any failure —
	// short blob, wrong key, corrupted ciphertext — surfaces as
	// ErrDecryptionFailed without distinguishing the cause.
	UnwrapUserKey(blob []byte, masterKey models.MasterKey) (models.UserKey, error)

	// SealPinEnvelope wraps the user key under a key derived from the PIN
	// and a fresh random salt. The envelope records the KDF parameters and
	// salt needed to open it later.
	SealPinEnvelope(ctx context.Context, userKey models.UserKey, pin string, kdf models.KdfConfig) (models.PasswordProtectedKeyEnvelope, error)

	// OpenPinEnvelope unwraps the user key from an envelope using the PIN.
	// A wrong PIN or tampered envelope surfaces as ErrDecryptionFailed.
	OpenPinEnvelope(ctx context.Context, envelope models.PasswordProtectedKeyEnvelope, pin string) (models.UserKey, error)
}
