// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-unlock-core/internal/adapter"
	"github.com/MKhiriev/go-unlock-core/internal/crypto"
	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/sdk"
	"github.com/MKhiriev/go-unlock-core/internal/store"
	"github.com/MKhiriev/go-unlock-core/internal/workers"
	"github.com/MKhiriev/go-unlock-core/models"
)

// ClientServices bundles every client-side service behind one composition
// point.
type ClientServices struct {
	MasterPassword MasterPasswordService
	ChangeEmail    ChangeEmailService
	Unlock         UnlockService

	MasterKeys crypto.MasterKeyService
	Sdk        sdk.Service
	Flags      FlagSource
}

// NewClientServices wires the full service graph over the local storages and
// the remote accounts adapter. biometrics may be nil when no platform gate is
// available; biometric unlock then reports itself unavailable.
func NewClientServices(storages *store.ClientStorages, remote adapter.AccountsAdapter, flags FlagSource, pool *workers.Pool, biometrics BiometricsService, log *logger.Logger) (*ClientServices, error) {
	if storages == nil || remote == nil || flags == nil || pool == nil {
		return nil, fmt.Errorf("%w: missing client service dependency", ErrInvalidInput)
	}
	if biometrics == nil {
		biometrics = unavailableBiometricsService{}
	}

	masterKeys := crypto.NewMasterKeyService(pool)
	sdkService := sdk.NewService(masterKeys, storages.Sessions, log)

	masterPassword := NewMasterPasswordService(masterKeys, storages.Accounts, storages.LegacyKeys, log)
	rotated := NewRotatedCredentialSource(masterPassword, storages.Sessions, storages.Accounts, flags, log)
	legacy := NewLegacyCredentialSource(masterKeys, storages.Sessions, storages.Accounts, storages.LegacyKeys, log)

	return &ClientServices{
		MasterPassword: masterPassword,
		ChangeEmail:    NewChangeEmailService(storages.Accounts, remote, flags, rotated, legacy, log),
		Unlock:         NewUnlockService(storages.Accounts, storages.PinEnvelopes, masterPassword, biometrics, sdkService, flags, log),
		MasterKeys:     masterKeys,
		Sdk:            sdkService,
		Flags:          flags,
	}, nil
}

// unavailableBiometricsService is the default gate on platforms without a
// biometric integration.
type unavailableBiometricsService struct{}

func (unavailableBiometricsService) UnlockWithBiometricsForUser(context.Context, models.UserID) (models.UserKey, error) {
	return nil, fmt.Errorf("%w: no platform biometric gate", ErrBiometricUnavailable)
}
