// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-unlock-core/internal/workers"
	"github.com/MKhiriev/go-unlock-core/models"
)

const (
	masterKeyLen = 32 // 256 bits
	userKeyLen   = 32
	envSaltLen   = 16

	// PBKDF2 stretch counts over the derived master key. The counts double as
	// purpose tags: a hash stretched for the server can never equal one
	// stretched for local authorization.
	serverAuthorizationIterations = 1
	localAuthorizationIterations  = 2
)

// hkdfWrapInfo domain-separates the wrapping key from the master key itself.
var hkdfWrapInfo = []byte("user-key-wrap")

// masterKeyService is the private implementation of [MasterKeyService].
type masterKeyService struct {
	// pool caps concurrent derivations; Argon2id holds its memory cost for
	// the whole run.
	pool *workers.Pool
}

// NewMasterKeyService constructs a [MasterKeyService] whose derivations run
// through pool.
func NewMasterKeyService(pool *workers.Pool) MasterKeyService {
	return &masterKeyService{pool: pool}
}

// DeriveMasterKey implements [MasterKeyService].
func (m *masterKeyService) DeriveMasterKey(ctx context.Context, password string, salt models.Salt, kdf models.KdfConfig) (models.MasterKey, error) {
	if salt.IsZero() {
		return nil, fmt.Errorf("%w: empty salt", ErrUnsupportedKdf)
	}
	if err := kdf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKdf, err)
	}

	// Domain-separate the email-derived salt so the raw email bytes never
	// feed the KDF directly.
	saltDigest := sha256.Sum256([]byte(salt))

	return m.derive(ctx, []byte(password), saltDigest[:], kdf)
}

// DeriveLegacyMasterKey implements [MasterKeyService].
//
// Deprecated: raw-byte invocation convention kept for the old server
// contract. Removed together with the legacy master-key cache.
func (m *masterKeyService) DeriveLegacyMasterKey(ctx context.Context, password, salt []byte, kdf models.KdfConfig) (models.MasterKey, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrUnsupportedKdf)
	}
	if err := kdf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKdf, err)
	}

	return m.derive(ctx, password, salt, kdf)
}

func (m *masterKeyService) derive(ctx context.Context, password, salt []byte, kdf models.KdfConfig) (models.MasterKey, error) {
	var key []byte

	err := m.pool.Do(ctx, func() error {
		switch kdf.Type {
		case models.KdfPBKDF2SHA256:
			key = pbkdf2.Key(password, salt, kdf.Iterations, masterKeyLen, sha256.New)
		case models.KdfArgon2id:
			key = argon2.IDKey(
				password,
				salt,
				uint32(kdf.Iterations),
				uint32(kdf.MemoryMiB)*1024,
				uint8(kdf.Parallelism),
				masterKeyLen,
			)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	return models.MasterKey(key), nil
}

// AuthenticationHash implements [MasterKeyService]. It computes
// PBKDF2-SHA256(masterKey, password, 1) — a one-round stretch that makes the
// value non-reversible and distinct from the master key without burning CPU
// on material that is already high-entropy.
func (m *masterKeyService) AuthenticationHash(masterKey models.MasterKey, password string) []byte {
	return pbkdf2.Key(masterKey, []byte(password), serverAuthorizationIterations, masterKeyLen, sha256.New)
}

// LocalAuthorizationHash implements [MasterKeyService]. Same stretch as
// AuthenticationHash but with two rounds, so local and server hashes never
// coincide.
func (m *masterKeyService) LocalAuthorizationHash(masterKey models.MasterKey, password string) []byte {
	return pbkdf2.Key(masterKey, []byte(password), localAuthorizationIterations, masterKeyLen, sha256.New)
}

// GenerateUserKey implements [MasterKeyService].
func (m *masterKeyService) GenerateUserKey() (models.UserKey, error) {
	key := make([]byte, userKeyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return models.UserKey(key), nil
}

// WrapUserKey implements [MasterKeyService]. The master key is expanded
// through HKDF into a dedicated wrapping key, then the user key is sealed
// with AES-256-GCM. Blob layout: nonce ‖ ciphertext.
func (m *masterKeyService) WrapUserKey(userKey models.UserKey, masterKey models.MasterKey) ([]byte, error) {
	if len(userKey) == 0 || len(masterKey) == 0 {
		return nil, fmt.Errorf("%w: missing key material", ErrWrapFailed)
	}

	gcm, err := m.wrapCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrapFailed, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrapFailed, err)
	}

	// Prepend the nonce so UnwrapUserKey can split it out.
	ciphertext := gcm.Seal(nil, nonce, userKey, nil)
	return append(nonce, ciphertext...), nil
}

// UnwrapUserKey implements [MasterKeyService]. Every failure mode collapses
// into ErrDecryptionFailed so callers cannot tell a wrong key from a
// corrupted blob.
func (m *masterKeyService) UnwrapUserKey(blob []byte, masterKey models.MasterKey) (models.UserKey, error) {
	gcm, err := m.wrapCipher(masterKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrDecryptionFailed
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	key, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return models.UserKey(key), nil
}

// SealPinEnvelope implements [MasterKeyService].
func (m *masterKeyService) SealPinEnvelope(ctx context.Context, userKey models.UserKey, pin string, kdf models.KdfConfig) (models.PasswordProtectedKeyEnvelope, error) {
	if len(userKey) == 0 || pin == "" {
		return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("%w: missing user key or pin", ErrWrapFailed)
	}

	salt := make([]byte, envSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("%w: %v", ErrWrapFailed, err)
	}

	pinKey, err := m.derive(ctx, []byte(pin), salt, kdf)
	if err != nil {
		return models.PasswordProtectedKeyEnvelope{}, err
	}

	blob, err := m.WrapUserKey(userKey, pinKey)
	if err != nil {
		return models.PasswordProtectedKeyEnvelope{}, err
	}

	return models.PasswordProtectedKeyEnvelope{
		Kdf:            kdf,
		EnvelopeSalt:   base64.StdEncoding.EncodeToString(salt),
		WrappedUserKey: base64.StdEncoding.EncodeToString(blob),
	}, nil
}

// OpenPinEnvelope implements [MasterKeyService].
func (m *masterKeyService) OpenPinEnvelope(ctx context.Context, envelope models.PasswordProtectedKeyEnvelope, pin string) (models.UserKey, error) {
	salt, err := base64.StdEncoding.DecodeString(envelope.EnvelopeSalt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	blob, err := base64.StdEncoding.DecodeString(envelope.WrappedUserKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	pinKey, err := m.derive(ctx, []byte(pin), salt, envelope.Kdf)
	if err != nil {
		return nil, err
	}

	return m.UnwrapUserKey(blob, pinKey)
}

// wrapCipher expands masterKey into the wrapping key and builds the AES-GCM
// AEAD over it.
func (m *masterKeyService) wrapCipher(masterKey models.MasterKey) (cipher.AEAD, error) {
	wrappingKey := make([]byte, masterKeyLen)
	expand := hkdf.Expand(sha256.New, masterKey, hkdfWrapInfo)
	if _, err := io.ReadFull(expand, wrappingKey); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(wrappingKey)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
