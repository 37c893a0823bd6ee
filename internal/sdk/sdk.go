// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-unlock-core/internal/crypto"
	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/store"
	"github.com/MKhiriev/go-unlock-core/models"
)

// ClientRef is a scoped handle to a [CryptoClient]. Release is idempotent and
// must be called when the caller is done; the idiomatic shape is
//
//	ref, err := svc.Client(userID)
//	if err != nil { ... }
//	defer ref.Release()
//	ref.Value().InitializeUserCrypto(ctx, req)
type ClientRef struct {
	client  CryptoClient
	release func()
	once    sync.Once
}

// NewClientRef wraps a client in a handle. release may be nil.
func NewClientRef(client CryptoClient, release func()) *ClientRef {
	return &ClientRef{client: client, release: release}
}

// Value returns the client behind the handle.
func (r *ClientRef) Value() CryptoClient {
	return r.client
}

// Release returns the handle. Safe to call more than once.
func (r *ClientRef) Release() {
	r.once.Do(func() {
		if r.release != nil {
			r.release()
		}
	})
}

type sdkService struct {
	crypto   crypto.MasterKeyService
	sessions store.SessionStore

	mu     sync.Mutex
	active map[models.UserID]int

	logger *logger.Logger
}

// NewService builds the client-handle service on top of the key service and
// the in-memory session store.
func NewService(masterKeys crypto.MasterKeyService, sessions store.SessionStore, log *logger.Logger) Service {
	return &sdkService{
		crypto:   masterKeys,
		sessions: sessions,
		active:   make(map[models.UserID]int),
		logger:   log,
	}
}

// Client implements [Service]. Handles are counted per user so a leak shows
// up in the logs instead of going unnoticed.
func (s *sdkService) Client(userID models.UserID) (*ClientRef, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidRequest)
	}

	s.mu.Lock()
	s.active[userID]++
	s.mu.Unlock()

	client := &cryptoClient{crypto: s.crypto, sessions: s.sessions, logger: s.logger}
	return NewClientRef(client, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.active[userID]--
		if s.active[userID] < 0 {
			s.logger.Error().Str("func", "Client").Msgf("handle for user %s released more times than acquired", userID)
			s.active[userID] = 0
		}
	}), nil
}

type cryptoClient struct {
	crypto   crypto.MasterKeyService
	sessions store.SessionStore

	logger *logger.Logger
}

// InitializeUserCrypto implements [CryptoClient]. The user key is fully
// recovered before the session store is touched, so a failed unlock never
// leaves a partially established session behind.
func (c *cryptoClient) InitializeUserCrypto(ctx context.Context, req InitializeUserCryptoRequest) error {
	if err := c.validate(req); err != nil {
		return err
	}

	userKey, err := c.recoverUserKey(ctx, req)
	if err != nil {
		c.logger.Error().Str("func", "InitializeUserCrypto").Err(err).Msg("user key recovery failed")
		return err
	}

	c.sessions.SetUserKey(req.UserID, userKey)
	return nil
}

func (c *cryptoClient) validate(req InitializeUserCryptoRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidRequest)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: empty email", ErrInvalidRequest)
	}
	if err := req.KdfParams.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if err := req.Method.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func (c *cryptoClient) recoverUserKey(ctx context.Context, req InitializeUserCryptoRequest) (models.UserKey, error) {
	switch {
	case req.Method.PinEnvelope != nil:
		m := req.Method.PinEnvelope
		if m.PinProtectedUserKeyEnvelope.IsZero() {
			return nil, fmt.Errorf("%w: empty pin envelope", ErrInvalidRequest)
		}
		return c.crypto.OpenPinEnvelope(ctx, m.PinProtectedUserKeyEnvelope, m.Pin)

	case req.Method.MasterPasswordUnlock != nil:
		m := req.Method.MasterPasswordUnlock
		if m.MasterPasswordUnlock.IsZero() {
			return nil, fmt.Errorf("%w: empty unlock data", ErrInvalidRequest)
		}

		masterKey, err := c.crypto.DeriveMasterKey(ctx, m.Password, m.MasterPasswordUnlock.Salt, m.MasterPasswordUnlock.Kdf)
		if err != nil {
			return nil, err
		}

		blob, err := base64.StdEncoding.DecodeString(m.MasterPasswordUnlock.MasterKeyWrappedUserKey)
		if err != nil {
			// Malformed ciphertext is indistinguishable from a wrong key to the caller.
			return nil, crypto.ErrDecryptionFailed
		}
		return c.crypto.UnwrapUserKey(blob, masterKey)

	case req.Method.DecryptedKey != nil:
		userKey, err := models.UserKeyFromBase64(req.Method.DecryptedKey.DecryptedUserKey)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed decrypted key", ErrInvalidRequest)
		}
		return userKey, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, models.ErrAmbiguousUnlockMethod)
	}
}
