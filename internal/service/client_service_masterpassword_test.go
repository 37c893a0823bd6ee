package service_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/mock"
	"github.com/MKhiriev/go-unlock-core/internal/service"
	"github.com/MKhiriev/go-unlock-core/models"
)

func testKdf() models.KdfConfig {
	return models.KdfConfig{Type: models.KdfPBKDF2SHA256, Iterations: models.MinPBKDF2Iterations}
}

type masterPasswordFixture struct {
	crypto   *mock.MockMasterKeyService
	accounts *mock.MockAccountStore
	legacy   *mock.MockLegacyKeyStore
	svc      service.MasterPasswordService
}

func newMasterPasswordFixture(t *testing.T) *masterPasswordFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &masterPasswordFixture{
		crypto:   mock.NewMockMasterKeyService(ctrl),
		accounts: mock.NewMockAccountStore(ctrl),
		legacy:   mock.NewMockLegacyKeyStore(ctrl),
	}
	f.svc = service.NewMasterPasswordService(f.crypto, f.accounts, f.legacy, logger.Nop())
	return f
}

func TestMakeMasterPasswordAuthenticationData(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	salt := models.EmailToSalt("user@example.com")
	masterKey := models.MasterKey("master-key-bytes")

	f.crypto.EXPECT().DeriveMasterKey(ctx, "password", salt, testKdf()).Return(masterKey, nil)
	f.crypto.EXPECT().AuthenticationHash(masterKey, "password").Return([]byte("auth-hash"))

	got, err := f.svc.MakeMasterPasswordAuthenticationData(ctx, "password", testKdf(), salt)
	require.NoError(t, err)

	assert.Equal(t, salt, got.Salt)
	assert.Equal(t, testKdf(), got.Kdf)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("auth-hash")), got.MasterPasswordAuthenticationHash)
}

func TestMakeMasterPasswordAuthenticationData_InvalidInput(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	salt := models.EmailToSalt("user@example.com")

	tests := []struct {
		name     string
		password string
		kdf      models.KdfConfig
		salt     models.Salt
	}{
		{"empty password", "", testKdf(), salt},
		{"empty salt", "password", testKdf(), ""},
		{"unset kdf", "password", models.KdfConfig{}, salt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.MakeMasterPasswordAuthenticationData(ctx, tt.password, tt.kdf, tt.salt)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestMakeMasterPasswordUnlockData(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	salt := models.EmailToSalt("user@example.com")
	masterKey := models.MasterKey("master-key-bytes")
	userKey := models.UserKey("user-key-bytes")

	f.crypto.EXPECT().DeriveMasterKey(ctx, "password", salt, testKdf()).Return(masterKey, nil)
	f.crypto.EXPECT().WrapUserKey(userKey, masterKey).Return([]byte("wrapped"), nil)

	got, err := f.svc.MakeMasterPasswordUnlockData(ctx, "password", testKdf(), salt, userKey)
	require.NoError(t, err)

	assert.Equal(t, salt, got.Salt)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("wrapped")), got.MasterKeyWrappedUserKey)
}

func TestMakeMasterPasswordUnlockData_EmptyUserKey(t *testing.T) {
	f := newMasterPasswordFixture(t)

	_, err := f.svc.MakeMasterPasswordUnlockData(context.Background(), "password", testKdf(), models.EmailToSalt("user@example.com"), nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestMasterPasswordUnlockData_NotCached(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	userID := models.NewUserID()

	f.accounts.EXPECT().MasterPasswordUnlockData(ctx, userID).Return(models.MasterPasswordUnlockData{}, nil)

	_, err := f.svc.MasterPasswordUnlockData(ctx, userID)
	assert.ErrorIs(t, err, service.ErrIdentityUnavailable)
}

func TestSetLegacyMasterKeyFromUnlockData(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	userID := models.NewUserID()
	unlockData := models.MasterPasswordUnlockData{
		Salt:                    models.EmailToSalt("user@example.com"),
		Kdf:                     testKdf(),
		MasterKeyWrappedUserKey: "d3JhcHBlZA==",
	}
	legacyKey := models.MasterKey("legacy-key-bytes")

	// Старый путь: сырые байты пароля и соли без какой-либо нормализации.
	f.crypto.EXPECT().
		DeriveLegacyMasterKey(ctx, []byte("password"), []byte("user@example.com"), testKdf()).
		Return(legacyKey, nil)
	f.crypto.EXPECT().LocalAuthorizationHash(legacyKey, "password").Return([]byte("local-hash"))

	var saved models.LegacyMasterKeys
	f.legacy.EXPECT().
		SetLegacyMasterKeys(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, keys models.LegacyMasterKeys) error {
			saved = keys
			return nil
		})

	require.NoError(t, f.svc.SetLegacyMasterKeyFromUnlockData(ctx, userID, "password", unlockData))

	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, base64.StdEncoding.EncodeToString(legacyKey), saved.MasterKey)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("local-hash")), saved.MasterKeyHash)
}

func TestSetLegacyMasterKeyFromUnlockData_Idempotent(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	userID := models.NewUserID()
	unlockData := models.MasterPasswordUnlockData{
		Salt: models.EmailToSalt("user@example.com"),
		Kdf:  testKdf(),
	}
	legacyKey := models.MasterKey("legacy-key-bytes")

	f.crypto.EXPECT().
		DeriveLegacyMasterKey(ctx, []byte("password"), []byte("user@example.com"), testKdf()).
		Return(legacyKey, nil).
		Times(2)
	f.crypto.EXPECT().LocalAuthorizationHash(legacyKey, "password").Return([]byte("local-hash")).Times(2)

	var writes []models.LegacyMasterKeys
	f.legacy.EXPECT().
		SetLegacyMasterKeys(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, keys models.LegacyMasterKeys) error {
			writes = append(writes, keys)
			return nil
		}).
		Times(2)

	require.NoError(t, f.svc.SetLegacyMasterKeyFromUnlockData(ctx, userID, "password", unlockData))
	require.NoError(t, f.svc.SetLegacyMasterKeyFromUnlockData(ctx, userID, "password", unlockData))

	require.Len(t, writes, 2)
	assert.Equal(t, writes[0], writes[1], "same inputs must cache the same values")
}

func TestSaltForUser_Unresolvable(t *testing.T) {
	f := newMasterPasswordFixture(t)
	ctx := context.Background()
	userID := models.NewUserID()

	f.accounts.EXPECT().SaltForUser(ctx, userID).Return(models.Salt(""), assert.AnError)

	_, err := f.svc.SaltForUser(ctx, userID)
	assert.ErrorIs(t, err, service.ErrIdentityUnavailable)
}
