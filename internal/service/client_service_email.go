// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-unlock-core/internal/adapter"
	"github.com/MKhiriev/go-unlock-core/internal/crypto"
	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/store"
	"github.com/MKhiriev/go-unlock-core/models"
)

type changeEmailService struct {
	accounts store.AccountStore
	remote   adapter.AccountsAdapter
	flags    FlagSource

	rotated CredentialSource
	legacy  CredentialSource

	logger *logger.Logger
}

// NewChangeEmailService builds the email-change orchestrator. The two
// credential sources implement the rotated and the legacy wire format; which
// one serves an invocation is decided by a fresh flag lookup at its start.
func NewChangeEmailService(accounts store.AccountStore, remote adapter.AccountsAdapter, flags FlagSource, rotated, legacy CredentialSource, log *logger.Logger) ChangeEmailService {
	return &changeEmailService{
		accounts: accounts,
		remote:   remote,
		flags:    flags,
		rotated:  rotated,
		legacy:   legacy,
		logger:   log,
	}
}

func (s *changeEmailService) credentialSource(ctx context.Context) CredentialSource {
	if s.flags.Enabled(ctx, FlagRotatedCredentials) {
		return s.rotated
	}
	return s.legacy
}

// RequestChangeToken implements [ChangeEmailService].
func (s *changeEmailService) RequestChangeToken(ctx context.Context, userID models.UserID, password, newEmail string) error {
	if newEmail == "" {
		return fmt.Errorf("%w: empty new email", ErrInvalidInput)
	}

	account, err := s.accounts.Account(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	request, err := s.credentialSource(ctx).TokenRequest(ctx, account, password, newEmail)
	if err != nil {
		return err
	}

	// Remote validation failures propagate verbatim.
	return s.remote.RequestEmailToken(ctx, request)
}

// ConfirmChange implements [ChangeEmailService]. The commit runs strictly
// after the remote accepted the request; local caches must never reflect a
// salt the server has not durably switched to, because that desynchronizes
// every later authentication attempt with no recovery short of a logout.
func (s *changeEmailService) ConfirmChange(ctx context.Context, userID models.UserID, password, newEmail, token string) error {
	if newEmail == "" || token == "" {
		return fmt.Errorf("%w: empty new email or token", ErrInvalidInput)
	}

	account, err := s.accounts.Account(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	source := s.credentialSource(ctx)

	creds, err := source.ChangeCredentials(ctx, account, password, newEmail, token)
	if err != nil {
		return err
	}

	if err := s.remote.ConfirmEmailChange(ctx, creds.Request); err != nil {
		return err
	}

	if err := source.Commit(ctx, account, password, creds); err != nil {
		// The server already switched; the local cache catches up on the
		// next unlock.
		s.logger.Error().Str("func", "ConfirmChange").Err(err).Msgf("local commit failed for user %s", userID)
		return err
	}

	s.logger.Info().Str("func", "ConfirmChange").Msgf("email change committed for user %s", userID)
	return nil
}

// rotatedCredentialSource derives the current wire format: separate
// authentication and unlock data, each carrying its salt and KDF config.
type rotatedCredentialSource struct {
	masterPassword MasterPasswordService
	sessions       store.SessionStore
	accounts       store.AccountStore
	flags          FlagSource

	logger *logger.Logger
}

// NewRotatedCredentialSource builds the rotated-format credential source.
func NewRotatedCredentialSource(masterPassword MasterPasswordService, sessions store.SessionStore, accounts store.AccountStore, flags FlagSource, log *logger.Logger) CredentialSource {
	return &rotatedCredentialSource{
		masterPassword: masterPassword,
		sessions:       sessions,
		accounts:       accounts,
		flags:          flags,
		logger:         log,
	}
}

// TokenRequest implements [CredentialSource].
func (r *rotatedCredentialSource) TokenRequest(ctx context.Context, account models.Account, password, newEmail string) (models.EmailTokenRequest, error) {
	authData, err := r.masterPassword.MakeMasterPasswordAuthenticationData(ctx, password, account.Kdf, account.Salt())
	if err != nil {
		return models.EmailTokenRequest{}, err
	}
	return models.NewEmailTokenRequest(authData, newEmail), nil
}

// ChangeCredentials implements [CredentialSource]. The identity proof is
// computed under the existing salt first, then the new-salt credentials;
// the two hashes land in distinct request fields by construction.
func (r *rotatedCredentialSource) ChangeCredentials(ctx context.Context, account models.Account, password, newEmail, token string) (ChangeCredentials, error) {
	existingAuth, err := r.masterPassword.MakeMasterPasswordAuthenticationData(ctx, password, account.Kdf, account.Salt())
	if err != nil {
		return ChangeCredentials{}, err
	}

	userKey, ok := r.sessions.UserKey(account.UserID)
	if !ok {
		return ChangeCredentials{}, fmt.Errorf("%w: session is locked for user %s", ErrUserKeyUnavailable, account.UserID)
	}

	newSalt := models.EmailToSalt(newEmail)

	newAuth, err := r.masterPassword.MakeMasterPasswordAuthenticationData(ctx, password, account.Kdf, newSalt)
	if err != nil {
		return ChangeCredentials{}, err
	}

	newUnlock, err := r.masterPassword.MakeMasterPasswordUnlockData(ctx, password, account.Kdf, newSalt, userKey)
	if err != nil {
		return ChangeCredentials{}, err
	}

	request := models.NewEmailChangeRequest(newAuth, newUnlock)
	request.AuthenticateWith(existingAuth)
	request.NewEmail = newEmail
	request.Token = token

	return ChangeCredentials{Request: request, NewEmail: newEmail, UnlockData: newUnlock}, nil
}

// Commit implements [CredentialSource]: the account cache switches to the new
// email and unlock data, and the legacy cache is refreshed from them while
// its retirement flag still allows it.
func (r *rotatedCredentialSource) Commit(ctx context.Context, account models.Account, password string, creds ChangeCredentials) error {
	account.Email = creds.NewEmail
	account.UnlockData = creds.UnlockData
	if err := r.accounts.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	if r.flags.Enabled(ctx, FlagLegacyMasterKeyCache) {
		if err := r.masterPassword.SetLegacyMasterKeyFromUnlockData(ctx, account.UserID, password, creds.UnlockData); err != nil {
			return err
		}
	}
	return nil
}

// legacyCredentialSource derives the deprecated wire format: one master key
// per email with the raw bytes fed straight into the KDF, no separate unlock
// data. Kept until the rotated format is fully rolled out.
type legacyCredentialSource struct {
	crypto   crypto.MasterKeyService
	sessions store.SessionStore
	accounts store.AccountStore
	legacy   store.LegacyKeyStore

	logger *logger.Logger
}

// NewLegacyCredentialSource builds the legacy-format credential source.
func NewLegacyCredentialSource(masterKeys crypto.MasterKeyService, sessions store.SessionStore, accounts store.AccountStore, legacy store.LegacyKeyStore, log *logger.Logger) CredentialSource {
	return &legacyCredentialSource{
		crypto:   masterKeys,
		sessions: sessions,
		accounts: accounts,
		legacy:   legacy,
		logger:   log,
	}
}

func (l *legacyCredentialSource) authHash(ctx context.Context, password, email string, kdf models.KdfConfig) (string, error) {
	masterKey, err := l.crypto.DeriveLegacyMasterKey(ctx, []byte(password), []byte(models.EmailToSalt(email)), kdf)
	if err != nil {
		return "", fmt.Errorf("derive legacy master key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(l.crypto.AuthenticationHash(masterKey, password)), nil
}

// TokenRequest implements [CredentialSource].
func (l *legacyCredentialSource) TokenRequest(ctx context.Context, account models.Account, password, newEmail string) (models.EmailTokenRequest, error) {
	hash, err := l.authHash(ctx, password, account.Email, account.Kdf)
	if err != nil {
		return models.EmailTokenRequest{}, err
	}
	return models.EmailTokenRequest{NewEmail: newEmail, MasterPasswordHash: hash}, nil
}

// ChangeCredentials implements [CredentialSource].
func (l *legacyCredentialSource) ChangeCredentials(ctx context.Context, account models.Account, password, newEmail, token string) (ChangeCredentials, error) {
	existingHash, err := l.authHash(ctx, password, account.Email, account.Kdf)
	if err != nil {
		return ChangeCredentials{}, err
	}

	userKey, ok := l.sessions.UserKey(account.UserID)
	if !ok {
		return ChangeCredentials{}, fmt.Errorf("%w: session is locked for user %s", ErrUserKeyUnavailable, account.UserID)
	}

	newMasterKey, err := l.crypto.DeriveLegacyMasterKey(ctx, []byte(password), []byte(models.EmailToSalt(newEmail)), account.Kdf)
	if err != nil {
		return ChangeCredentials{}, fmt.Errorf("derive legacy master key: %w", err)
	}

	wrappedKey, err := l.crypto.WrapUserKey(userKey, newMasterKey)
	if err != nil {
		return ChangeCredentials{}, fmt.Errorf("wrap user key: %w", err)
	}

	return ChangeCredentials{
		Request: models.EmailChangeRequest{
			NewEmail:              newEmail,
			Token:                 token,
			MasterPasswordHash:    existingHash,
			NewMasterPasswordHash: base64.StdEncoding.EncodeToString(l.crypto.AuthenticationHash(newMasterKey, password)),
			Key:                   base64.StdEncoding.EncodeToString(wrappedKey),
		},
		NewEmail:        newEmail,
		legacyMasterKey: newMasterKey,
	}, nil
}

// Commit implements [CredentialSource]: the account cache switches to the new
// email and the legacy cache takes the master key derived for the accepted
// request, so it is never derived twice.
func (l *legacyCredentialSource) Commit(ctx context.Context, account models.Account, password string, creds ChangeCredentials) error {
	account.Email = creds.NewEmail
	if err := l.accounts.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	keys := models.LegacyMasterKeys{
		UserID:        account.UserID,
		MasterKey:     base64.StdEncoding.EncodeToString(creds.legacyMasterKey),
		MasterKeyHash: base64.StdEncoding.EncodeToString(l.crypto.LocalAuthorizationHash(creds.legacyMasterKey, password)),
	}
	if err := l.legacy.SetLegacyMasterKeys(ctx, keys); err != nil {
		return fmt.Errorf("save legacy master keys: %w", err)
	}
	return nil
}
