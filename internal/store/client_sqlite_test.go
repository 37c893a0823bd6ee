package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/models"
)

func newMemoryStore(t *testing.T) *clientSQLiteStore {
	t.Helper()
	s, err := NewClientSQLiteStore(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testAccount(userID models.UserID) models.Account {
	return models.Account{
		UserID: userID,
		Email:  "Existing@Example.com",
		Kdf:    models.DefaultKdfConfig(),
		UnlockData: models.MasterPasswordUnlockData{
			Salt:                    "existing@example.com",
			Kdf:                     models.DefaultKdfConfig(),
			MasterKeyWrappedUserKey: "d3JhcHBlZA==",
		},
		CryptographicState: "opaque-wrapped-state",
	}
}

func TestClientSQLiteStore_AccountRoundTrip(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()
	userID := models.NewUserID()

	account := testAccount(userID)
	require.NoError(t, s.SaveAccount(ctx, account))

	got, err := s.Account(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, account, got)

	// Derived views resolve from the same record.
	kdf, err := s.KdfConfig(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, account.Kdf, kdf)

	salt, err := s.SaltForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.Salt("existing@example.com"), salt, "salt must come from the normalized current email")

	unlock, err := s.MasterPasswordUnlockData(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, account.UnlockData, unlock)
}

func TestClientSQLiteStore_SaveAccountOverwrites(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()
	userID := models.NewUserID()

	require.NoError(t, s.SaveAccount(ctx, testAccount(userID)))

	updated := testAccount(userID)
	updated.Email = "new@example.com"
	updated.UnlockData.Salt = "new@example.com"
	require.NoError(t, s.SaveAccount(ctx, updated))

	salt, err := s.SaltForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.Salt("new@example.com"), salt)
}

func TestClientSQLiteStore_AccountNotFound(t *testing.T) {
	s := newMemoryStore(t)

	_, err := s.Account(context.Background(), models.NewUserID())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestClientSQLiteStore_PersistentPinEnvelope(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()
	userID := models.NewUserID()

	envelope := models.PasswordProtectedKeyEnvelope{
		Kdf:            models.DefaultKdfConfig(),
		EnvelopeSalt:   "c2FsdA==",
		WrappedUserKey: "YmxvYg==",
	}
	require.NoError(t, s.SavePinProtectedUserKeyEnvelope(ctx, userID, models.PinLockPersistent, envelope))

	lockType, err := s.PinLockType(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.PinLockPersistent, lockType)

	got, err := s.PinProtectedUserKeyEnvelope(ctx, userID, models.PinLockPersistent)
	require.NoError(t, err)
	assert.Equal(t, envelope, got)

	// Requesting the other variant must not fall back to the stored one.
	_, err = s.PinProtectedUserKeyEnvelope(ctx, userID, models.PinLockEphemeral)
	assert.ErrorIs(t, err, ErrEnvelopeNotFound)
}

func TestClientSQLiteStore_EphemeralPinEnvelopeStaysOutOfDB(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()
	userID := models.NewUserID()

	envelope := models.PasswordProtectedKeyEnvelope{
		Kdf:            models.DefaultKdfConfig(),
		EnvelopeSalt:   "c2FsdA==",
		WrappedUserKey: "YmxvYg==",
	}
	require.NoError(t, s.SavePinProtectedUserKeyEnvelope(ctx, userID, models.PinLockEphemeral, envelope))

	got, err := s.PinProtectedUserKeyEnvelope(ctx, userID, models.PinLockEphemeral)
	require.NoError(t, err)
	assert.Equal(t, envelope, got)

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pin_envelopes").Scan(&count))
	assert.Zero(t, count, "ephemeral envelopes must never be persisted")
}

func TestClientSQLiteStore_PinNotEnrolled(t *testing.T) {
	s := newMemoryStore(t)

	_, err := s.PinLockType(context.Background(), models.NewUserID())
	assert.ErrorIs(t, err, ErrPinNotEnrolled)
}

func TestClientSQLiteStore_LegacyKeysRoundTrip(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()
	userID := models.NewUserID()

	keys := models.LegacyMasterKeys{UserID: userID, MasterKey: "bWs=", MasterKeyHash: "aGFzaA=="}
	require.NoError(t, s.SetLegacyMasterKeys(ctx, keys))

	got, err := s.LegacyMasterKeys(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, keys, got)

	// Идемпотентность: повторная запись тех же данных ничего не меняет.
	require.NoError(t, s.SetLegacyMasterKeys(ctx, keys))
	again, err := s.LegacyMasterKeys(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, keys, again)
}

func TestClientSQLiteStore_LegacyKeysNotFound(t *testing.T) {
	s := newMemoryStore(t)

	_, err := s.LegacyMasterKeys(context.Background(), models.NewUserID())
	assert.ErrorIs(t, err, ErrLegacyKeysNotFound)
}

// ── Error paths via sqlmock ──────────────────────────────────────────────────

func newMockStore(t *testing.T) (*clientSQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &clientSQLiteStore{
		db:        db,
		logger:    logger.Nop(),
		ephemeral: make(map[models.UserID]models.PasswordProtectedKeyEnvelope),
	}, mock
}

func TestClientSQLiteStore_AccountQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT user_id, email, kdf, unlock_data, crypto_state FROM accounts").
		WillReturnError(assert.AnError)

	_, err := s.Account(context.Background(), "user-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountNotFound, "transport errors must not masquerade as not-found")
}

func TestClientSQLiteStore_SetLegacyMasterKeysExecError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO legacy_keys").WillReturnError(assert.AnError)

	err := s.SetLegacyMasterKeys(context.Background(), models.LegacyMasterKeys{UserID: "user-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save legacy keys")
}
