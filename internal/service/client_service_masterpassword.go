// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-unlock-core/internal/crypto"
	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/store"
	"github.com/MKhiriev/go-unlock-core/models"
)

type masterPasswordService struct {
	crypto   crypto.MasterKeyService
	accounts store.AccountStore
	legacy   store.LegacyKeyStore

	logger *logger.Logger
}

// NewMasterPasswordService builds the credential layer over the key service
// and the local stores.
func NewMasterPasswordService(masterKeys crypto.MasterKeyService, accounts store.AccountStore, legacy store.LegacyKeyStore, log *logger.Logger) MasterPasswordService {
	return &masterPasswordService{
		crypto:   masterKeys,
		accounts: accounts,
		legacy:   legacy,
		logger:   log,
	}
}

// SaltForUser implements [MasterPasswordService].
func (m *masterPasswordService) SaltForUser(ctx context.Context, userID models.UserID) (models.Salt, error) {
	salt, err := m.accounts.SaltForUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	return salt, nil
}

// MakeMasterPasswordAuthenticationData implements [MasterPasswordService].
func (m *masterPasswordService) MakeMasterPasswordAuthenticationData(ctx context.Context, password string, kdf models.KdfConfig, salt models.Salt) (models.MasterPasswordAuthenticationData, error) {
	if err := validateDerivationInput(password, kdf, salt); err != nil {
		return models.MasterPasswordAuthenticationData{}, err
	}

	masterKey, err := m.crypto.DeriveMasterKey(ctx, password, salt, kdf)
	if err != nil {
		return models.MasterPasswordAuthenticationData{}, fmt.Errorf("derive master key: %w", err)
	}

	return models.MasterPasswordAuthenticationData{
		Salt: salt,
		Kdf:  kdf,
		MasterPasswordAuthenticationHash: base64.StdEncoding.EncodeToString(
			m.crypto.AuthenticationHash(masterKey, password),
		),
	}, nil
}

// MakeMasterPasswordUnlockData implements [MasterPasswordService].
func (m *masterPasswordService) MakeMasterPasswordUnlockData(ctx context.Context, password string, kdf models.KdfConfig, salt models.Salt, userKey models.UserKey) (models.MasterPasswordUnlockData, error) {
	if err := validateDerivationInput(password, kdf, salt); err != nil {
		return models.MasterPasswordUnlockData{}, err
	}
	if len(userKey) == 0 {
		return models.MasterPasswordUnlockData{}, fmt.Errorf("%w: empty user key", ErrInvalidInput)
	}

	masterKey, err := m.crypto.DeriveMasterKey(ctx, password, salt, kdf)
	if err != nil {
		return models.MasterPasswordUnlockData{}, fmt.Errorf("derive master key: %w", err)
	}

	blob, err := m.crypto.WrapUserKey(userKey, masterKey)
	if err != nil {
		return models.MasterPasswordUnlockData{}, fmt.Errorf("wrap user key: %w", err)
	}

	return models.MasterPasswordUnlockData{
		Salt:                    salt,
		Kdf:                     kdf,
		MasterKeyWrappedUserKey: base64.StdEncoding.EncodeToString(blob),
	}, nil
}

// MasterPasswordUnlockData implements [MasterPasswordService].
func (m *masterPasswordService) MasterPasswordUnlockData(ctx context.Context, userID models.UserID) (models.MasterPasswordUnlockData, error) {
	unlockData, err := m.accounts.MasterPasswordUnlockData(ctx, userID)
	if err != nil {
		return models.MasterPasswordUnlockData{}, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	if unlockData.IsZero() {
		return models.MasterPasswordUnlockData{}, fmt.Errorf("%w: no cached unlock data for user %s", ErrIdentityUnavailable, userID)
	}
	return unlockData, nil
}

// SetLegacyMasterKeyFromUnlockData implements [MasterPasswordService]. The
// derivation here deliberately differs from the primary path: the raw
// password and salt bytes go straight into the KDF, matching the deprecated
// convention the remaining legacy consumers expect.
func (m *masterPasswordService) SetLegacyMasterKeyFromUnlockData(ctx context.Context, userID models.UserID, password string, unlockData models.MasterPasswordUnlockData) error {
	if err := validateDerivationInput(password, unlockData.Kdf, unlockData.Salt); err != nil {
		return err
	}

	legacyKey, err := m.crypto.DeriveLegacyMasterKey(ctx, []byte(password), []byte(unlockData.Salt), unlockData.Kdf)
	if err != nil {
		return fmt.Errorf("derive legacy master key: %w", err)
	}

	keys := models.LegacyMasterKeys{
		UserID:        userID,
		MasterKey:     base64.StdEncoding.EncodeToString(legacyKey),
		MasterKeyHash: base64.StdEncoding.EncodeToString(m.crypto.LocalAuthorizationHash(legacyKey, password)),
	}
	if err := m.legacy.SetLegacyMasterKeys(ctx, keys); err != nil {
		return fmt.Errorf("save legacy master keys: %w", err)
	}

	m.logger.Debug().Str("func", "SetLegacyMasterKeyFromUnlockData").Msgf("legacy cache refreshed for user %s", userID)
	return nil
}

func validateDerivationInput(password string, kdf models.KdfConfig, salt models.Salt) error {
	if password == "" {
		return fmt.Errorf("%w: empty password", ErrInvalidInput)
	}
	if salt.IsZero() {
		return fmt.Errorf("%w: empty salt", ErrInvalidInput)
	}
	if err := kdf.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
