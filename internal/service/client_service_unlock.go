// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/sdk"
	"github.com/MKhiriev/go-unlock-core/internal/store"
	"github.com/MKhiriev/go-unlock-core/models"
)

type unlockService struct {
	accounts       store.AccountStore
	pins           store.PinEnvelopeStore
	masterPassword MasterPasswordService
	biometrics     BiometricsService
	sdk            sdk.Service
	flags          FlagSource

	logger *logger.Logger
}

// NewUnlockService wires the three unlock strategies over the stores, the
// credential layer, the platform biometric gate and the crypto initializer.
func NewUnlockService(accounts store.AccountStore, pins store.PinEnvelopeStore, masterPassword MasterPasswordService, biometrics BiometricsService, sdkService sdk.Service, flags FlagSource, log *logger.Logger) UnlockService {
	return &unlockService{
		accounts:       accounts,
		pins:           pins,
		masterPassword: masterPassword,
		biometrics:     biometrics,
		sdk:            sdkService,
		flags:          flags,
		logger:         log,
	}
}

// UnlockWithPin implements [UnlockService]. The lock-type setting decides
// which envelope variant is looked up; a user on the ephemeral setting never
// reads the persistent envelope and vice versa.
func (s *unlockService) UnlockWithPin(ctx context.Context, userID models.UserID, pin string) error {
	if pin == "" {
		return fmt.Errorf("%w: empty pin", ErrInvalidInput)
	}

	account, err := s.accounts.Account(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	lockType, err := s.pins.PinLockType(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnvelopeUnavailable, err)
	}

	envelope, err := s.pins.PinProtectedUserKeyEnvelope(ctx, userID, lockType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnvelopeUnavailable, err)
	}

	return s.initialize(ctx, account, models.UnlockMethod{
		PinEnvelope: &models.PinEnvelopeMethod{
			Pin:                         pin,
			PinProtectedUserKeyEnvelope: envelope,
		},
	})
}

// UnlockWithMasterPassword implements [UnlockService]. Whether the password
// was wrong or the cached blob corrupt is deliberately not distinguishable
// from the returned error.
func (s *unlockService) UnlockWithMasterPassword(ctx context.Context, userID models.UserID, password string) error {
	if password == "" {
		return fmt.Errorf("%w: empty password", ErrInvalidInput)
	}

	account, err := s.accounts.Account(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	unlockData, err := s.masterPassword.MasterPasswordUnlockData(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.initialize(ctx, account, models.UnlockMethod{
		MasterPasswordUnlock: &models.MasterPasswordUnlockMethod{
			Password:             password,
			MasterPasswordUnlock: unlockData,
		},
	}); err != nil {
		return err
	}

	if s.flags.Enabled(ctx, FlagLegacyMasterKeyCache) {
		if err := s.masterPassword.SetLegacyMasterKeyFromUnlockData(ctx, userID, password, unlockData); err != nil {
			// The session is established; a stale legacy cache heals on the
			// next unlock.
			s.logger.Error().Str("func", "UnlockWithMasterPassword").Err(err).Msgf("legacy cache refresh failed for user %s", userID)
		}
	}
	return nil
}

// UnlockWithBiometrics implements [UnlockService]. The platform gate hands
// over an already-decrypted user key; a denial or cancellation returns before
// the crypto initializer is ever reached.
func (s *unlockService) UnlockWithBiometrics(ctx context.Context, userID models.UserID) error {
	account, err := s.accounts.Account(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	userKey, err := s.biometrics.UnlockWithBiometricsForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrBiometricUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrBiometricUnavailable, err)
	}

	return s.initialize(ctx, account, models.UnlockMethod{
		DecryptedKey: &models.DecryptedKeyMethod{DecryptedUserKey: userKey.ToBase64()},
	})
}

// initialize is the shared final step of every strategy: acquire a scoped
// client handle and establish the cryptographic session in one atomic call.
func (s *unlockService) initialize(ctx context.Context, account models.Account, method models.UnlockMethod) error {
	ref, err := s.sdk.Client(account.UserID)
	if err != nil {
		return err
	}
	defer ref.Release()

	start := time.Now()
	if err := ref.Value().InitializeUserCrypto(ctx, sdk.InitializeUserCryptoRequest{
		UserID:                    account.UserID,
		KdfParams:                 account.Kdf,
		Email:                     account.Email,
		AccountCryptographicState: account.CryptographicState,
		Method:                    method,
	}); err != nil {
		return err
	}

	s.logger.Info().Str("func", "initialize").Dur("took", time.Since(start)).Msgf("session established for user %s", account.UserID)
	return nil
}
