// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/models"
)

// clientSQLiteStore implements AccountStore, PinEnvelopeStore and
// LegacyKeyStore on top of a local sqlite file. Ephemeral PIN envelopes are
// deliberately kept out of the database: they live in a process-local map and
// vanish on restart.
type clientSQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger

	mu        sync.RWMutex
	ephemeral map[models.UserID]models.PasswordProtectedKeyEnvelope
}

// NewClientSQLiteStore opens (creating if needed) the sqlite database at dsn
// and bootstraps the schema. Use ":memory:" for a throwaway store.
func NewClientSQLiteStore(ctx context.Context, dsn string, log *logger.Logger) (*clientSQLiteStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewClientSQLiteStore").Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping local database: %w", err)
	}

	if _, err = conn.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("bootstrap local schema: %w", err)
	}
	log.Debug().Str("func", "NewClientSQLiteStore").Msg("connected to local database")

	return &clientSQLiteStore{
		db:        conn,
		logger:    log,
		ephemeral: make(map[models.UserID]models.PasswordProtectedKeyEnvelope),
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Close releases the underlying database handle.
func (s *clientSQLiteStore) Close() error {
	return s.db.Close()
}

// ── AccountStore ─────────────────────────────────────────────────────────────

func (s *clientSQLiteStore) SaveAccount(ctx context.Context, account models.Account) error {
	kdfJSON, err := json.Marshal(account.Kdf)
	if err != nil {
		return fmt.Errorf("encode kdf config: %w", err)
	}
	unlockJSON, err := json.Marshal(account.UnlockData)
	if err != nil {
		return fmt.Errorf("encode unlock data: %w", err)
	}

	query, args, err := sq.Insert("accounts").
		Columns("user_id", "email", "kdf", "unlock_data", "crypto_state", "updated_at").
		Values(account.UserID.String(), account.Email, string(kdfJSON), string(unlockJSON), account.CryptographicState, time.Now().UTC()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET email=excluded.email, kdf=excluded.kdf, unlock_data=excluded.unlock_data, crypto_state=excluded.crypto_state, updated_at=excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save account query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "clientSQLiteStore.SaveAccount").Str("user_id", account.UserID.String()).Msg("failed to save account")
		return fmt.Errorf("save account: %w", err)
	}

	return nil
}

func (s *clientSQLiteStore) Account(ctx context.Context, userID models.UserID) (models.Account, error) {
	query, args, err := sq.Select("user_id", "email", "kdf", "unlock_data", "crypto_state").
		From("accounts").
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("build account query: %w", err)
	}

	var (
		account    models.Account
		id         string
		kdfJSON    string
		unlockJSON string
	)
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&id, &account.Email, &kdfJSON, &unlockJSON, &account.CryptographicState); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, userID)
		}
		return models.Account{}, fmt.Errorf("query account: %w", err)
	}

	account.UserID = models.UserID(id)
	if err = json.Unmarshal([]byte(kdfJSON), &account.Kdf); err != nil {
		return models.Account{}, fmt.Errorf("decode kdf config: %w", err)
	}
	if err = json.Unmarshal([]byte(unlockJSON), &account.UnlockData); err != nil {
		return models.Account{}, fmt.Errorf("decode unlock data: %w", err)
	}

	return account, nil
}

func (s *clientSQLiteStore) KdfConfig(ctx context.Context, userID models.UserID) (models.KdfConfig, error) {
	account, err := s.Account(ctx, userID)
	if err != nil {
		return models.KdfConfig{}, err
	}
	return account.Kdf, nil
}

func (s *clientSQLiteStore) SaltForUser(ctx context.Context, userID models.UserID) (models.Salt, error) {
	account, err := s.Account(ctx, userID)
	if err != nil {
		return "", err
	}
	return account.Salt(), nil
}

func (s *clientSQLiteStore) MasterPasswordUnlockData(ctx context.Context, userID models.UserID) (models.MasterPasswordUnlockData, error) {
	account, err := s.Account(ctx, userID)
	if err != nil {
		return models.MasterPasswordUnlockData{}, err
	}
	return account.UnlockData, nil
}

// ── PinEnvelopeStore ─────────────────────────────────────────────────────────

func (s *clientSQLiteStore) PinLockType(ctx context.Context, userID models.UserID) (models.PinLockType, error) {
	query, args, err := sq.Select("lock_type").
		From("pin_lock_types").
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build pin lock type query: %w", err)
	}

	var lockType string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&lockType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrPinNotEnrolled, userID)
		}
		return "", fmt.Errorf("query pin lock type: %w", err)
	}

	return models.PinLockType(lockType), nil
}

func (s *clientSQLiteStore) SavePinProtectedUserKeyEnvelope(ctx context.Context, userID models.UserID, lockType models.PinLockType, envelope models.PasswordProtectedKeyEnvelope) error {
	query, args, err := sq.Insert("pin_lock_types").
		Columns("user_id", "lock_type").
		Values(userID.String(), string(lockType)).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET lock_type=excluded.lock_type").
		ToSql()
	if err != nil {
		return fmt.Errorf("build pin lock type upsert: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save pin lock type: %w", err)
	}

	if lockType == models.PinLockEphemeral {
		s.mu.Lock()
		s.ephemeral[userID] = envelope
		s.mu.Unlock()
		return nil
	}

	envelopeJSON, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode pin envelope: %w", err)
	}

	query, args, err = sq.Insert("pin_envelopes").
		Columns("user_id", "lock_type", "envelope", "updated_at").
		Values(userID.String(), string(lockType), string(envelopeJSON), time.Now().UTC()).
		Suffix("ON CONFLICT(user_id, lock_type) DO UPDATE SET envelope=excluded.envelope, updated_at=excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build pin envelope upsert: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "clientSQLiteStore.SavePinProtectedUserKeyEnvelope").Str("user_id", userID.String()).Msg("failed to save pin envelope")
		return fmt.Errorf("save pin envelope: %w", err)
	}

	return nil
}

func (s *clientSQLiteStore) PinProtectedUserKeyEnvelope(ctx context.Context, userID models.UserID, lockType models.PinLockType) (models.PasswordProtectedKeyEnvelope, error) {
	if lockType == models.PinLockEphemeral {
		s.mu.RLock()
		envelope, ok := s.ephemeral[userID]
		s.mu.RUnlock()
		if !ok {
			return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("%w: %s (ephemeral)", ErrEnvelopeNotFound, userID)
		}
		return envelope, nil
	}

	query, args, err := sq.Select("envelope").
		From("pin_envelopes").
		Where(sq.Eq{"user_id": userID.String(), "lock_type": string(lockType)}).
		ToSql()
	if err != nil {
		return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("build pin envelope query: %w", err)
	}

	var envelopeJSON string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&envelopeJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("%w: %s", ErrEnvelopeNotFound, userID)
		}
		return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("query pin envelope: %w", err)
	}

	var envelope models.PasswordProtectedKeyEnvelope
	if err = json.Unmarshal([]byte(envelopeJSON), &envelope); err != nil {
		return models.PasswordProtectedKeyEnvelope{}, fmt.Errorf("decode pin envelope: %w", err)
	}

	return envelope, nil
}

// ── LegacyKeyStore ───────────────────────────────────────────────────────────

func (s *clientSQLiteStore) SetLegacyMasterKeys(ctx context.Context, keys models.LegacyMasterKeys) error {
	query, args, err := sq.Insert("legacy_keys").
		Columns("user_id", "master_key", "master_key_hash", "updated_at").
		Values(keys.UserID.String(), keys.MasterKey, keys.MasterKeyHash, time.Now().UTC()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET master_key=excluded.master_key, master_key_hash=excluded.master_key_hash, updated_at=excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build legacy keys upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "clientSQLiteStore.SetLegacyMasterKeys").Str("user_id", keys.UserID.String()).Msg("failed to save legacy keys")
		return fmt.Errorf("save legacy keys: %w", err)
	}

	return nil
}

func (s *clientSQLiteStore) LegacyMasterKeys(ctx context.Context, userID models.UserID) (models.LegacyMasterKeys, error) {
	query, args, err := sq.Select("master_key", "master_key_hash").
		From("legacy_keys").
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
	if err != nil {
		return models.LegacyMasterKeys{}, fmt.Errorf("build legacy keys query: %w", err)
	}

	keys := models.LegacyMasterKeys{UserID: userID}
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&keys.MasterKey, &keys.MasterKeyHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LegacyMasterKeys{}, fmt.Errorf("%w: %s", ErrLegacyKeysNotFound, userID)
		}
		return models.LegacyMasterKeys{}, fmt.Errorf("query legacy keys: %w", err)
	}

	return keys, nil
}
