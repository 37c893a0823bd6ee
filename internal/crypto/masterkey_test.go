package crypto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-unlock-core/internal/workers"
	"github.com/MKhiriev/go-unlock-core/models"
)

// testKdf keeps derivations fast; production minimums are enforced by
// KdfConfig.Validate, so tests use the smallest config that passes it.
func testKdf() models.KdfConfig {
	return models.KdfConfig{Type: models.KdfPBKDF2SHA256, Iterations: models.MinPBKDF2Iterations}
}

func newTestService(t *testing.T) MasterKeyService {
	t.Helper()
	return NewMasterKeyService(workers.NewPool(2))
}

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	salt := models.EmailToSalt("existing@example.com")

	first, err := svc.DeriveMasterKey(ctx, "password123", salt, testKdf())
	require.NoError(t, err)
	second, err := svc.DeriveMasterKey(ctx, "password123", salt, testKdf())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, []byte(first), 32)
}

func TestDeriveMasterKey_DistinctSaltsDistinctKeys(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	existing, err := svc.DeriveMasterKey(ctx, "password123", models.EmailToSalt("existing@example.com"), testKdf())
	require.NoError(t, err)
	changed, err := svc.DeriveMasterKey(ctx, "password123", models.EmailToSalt("new@example.com"), testKdf())
	require.NoError(t, err)

	assert.NotEqual(t, existing, changed)
}

func TestDeriveMasterKey_InvalidInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.DeriveMasterKey(ctx, "password", "", testKdf())
	assert.ErrorIs(t, err, ErrUnsupportedKdf)

	_, err = svc.DeriveMasterKey(ctx, "password", "salt", models.KdfConfig{})
	assert.ErrorIs(t, err, ErrUnsupportedKdf)
}

func TestDeriveMasterKey_Argon2id(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	kdf := models.KdfConfig{Type: models.KdfArgon2id, Iterations: 1, MemoryMiB: models.MinArgon2MemoryMiB, Parallelism: 1}

	key, err := svc.DeriveMasterKey(ctx, "password123", "user@example.com", kdf)
	require.NoError(t, err)
	assert.Len(t, []byte(key), 32)

	other, err := svc.DeriveMasterKey(ctx, "password124", "user@example.com", kdf)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

// Legacy derivation feeds raw salt bytes into the KDF while the structured
// path domain-separates through SHA-256, so identical inputs must yield
// different keys. The divergence is intentional and load-bearing.
func TestDeriveLegacyMasterKey_DivergesFromStructuredPath(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	structured, err := svc.DeriveMasterKey(ctx, "password123", models.EmailToSalt("user@example.com"), testKdf())
	require.NoError(t, err)

	legacy, err := svc.DeriveLegacyMasterKey(ctx, []byte("password123"), []byte("user@example.com"), testKdf())
	require.NoError(t, err)

	assert.NotEqual(t, structured, legacy)
}

func TestDeriveLegacyMasterKey_Deterministic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.DeriveLegacyMasterKey(ctx, []byte("pw"), []byte("user@example.com"), testKdf())
	require.NoError(t, err)
	second, err := svc.DeriveLegacyMasterKey(ctx, []byte("pw"), []byte("user@example.com"), testKdf())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAuthorizationHashes_DistinctPurposes(t *testing.T) {
	svc := newTestService(t)
	masterKey := models.MasterKey("0123456789abcdef0123456789abcdef")

	server := svc.AuthenticationHash(masterKey, "password")
	local := svc.LocalAuthorizationHash(masterKey, "password")

	assert.NotEqual(t, server, local)
	assert.Equal(t, server, svc.AuthenticationHash(masterKey, "password"), "authentication hash must be deterministic")
	assert.NotEqual(t, server, []byte(masterKey), "hash must differ from the key itself")
}

func TestWrapUserKey_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	userKey, err := svc.GenerateUserKey()
	require.NoError(t, err)
	require.Len(t, []byte(userKey), 32)

	masterKey := models.MasterKey("0123456789abcdef0123456789abcdef")

	blob, err := svc.WrapUserKey(userKey, masterKey)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), string(userKey))

	got, err := svc.UnwrapUserKey(blob, masterKey)
	require.NoError(t, err)
	assert.Equal(t, userKey, got)
}

func TestUnwrapUserKey_WrongKeyFails(t *testing.T) {
	svc := newTestService(t)

	userKey, err := svc.GenerateUserKey()
	require.NoError(t, err)

	blob, err := svc.WrapUserKey(userKey, models.MasterKey("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	_, err = svc.UnwrapUserKey(blob, models.MasterKey("fedcba9876543210fedcba9876543210"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestUnwrapUserKey_TamperedBlobFails(t *testing.T) {
	svc := newTestService(t)
	masterKey := models.MasterKey("0123456789abcdef0123456789abcdef")

	userKey, err := svc.GenerateUserKey()
	require.NoError(t, err)

	blob, err := svc.WrapUserKey(userKey, masterKey)
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xff
	_, err = svc.UnwrapUserKey(blob, masterKey)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = svc.UnwrapUserKey([]byte("short"), masterKey)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestPinEnvelope_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userKey, err := svc.GenerateUserKey()
	require.NoError(t, err)

	envelope, err := svc.SealPinEnvelope(ctx, userKey, "1234", testKdf())
	require.NoError(t, err)
	assert.False(t, envelope.IsZero())
	assert.Equal(t, testKdf(), envelope.Kdf)

	got, err := svc.OpenPinEnvelope(ctx, envelope, "1234")
	require.NoError(t, err)
	assert.Equal(t, userKey, got)
}

func TestPinEnvelope_WrongPinFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userKey, err := svc.GenerateUserKey()
	require.NoError(t, err)

	envelope, err := svc.SealPinEnvelope(ctx, userKey, "1234", testKdf())
	require.NoError(t, err)

	_, err = svc.OpenPinEnvelope(ctx, envelope, "4321")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestPinEnvelope_FreshSaltPerSeal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userKey, err := svc.GenerateUserKey()
	require.NoError(t, err)

	first, err := svc.SealPinEnvelope(ctx, userKey, "1234", testKdf())
	require.NoError(t, err)
	second, err := svc.SealPinEnvelope(ctx, userKey, "1234", testKdf())
	require.NoError(t, err)

	assert.NotEqual(t, first.EnvelopeSalt, second.EnvelopeSalt)
	assert.NotEqual(t, first.WrappedUserKey, second.WrappedUserKey)
}
