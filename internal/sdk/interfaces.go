// Package sdk owns in-memory cryptographic session establishment. A caller
// acquires a short-lived client handle, initializes the user's crypto with
// one of the discriminated unlock methods, and releases the handle. Session
// establishment is atomic: on failure no session state is left behind.
package sdk

import (
	"context"

	"github.com/MKhiriev/go-unlock-core/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sdk_mock.go -package=mock

// InitializeUserCryptoRequest carries everything needed to establish the
// in-memory cryptographic session for a user. Method selects how the user
// key is recovered; exactly one variant must be set.
type InitializeUserCryptoRequest struct {
	UserID                    models.UserID
	KdfParams                 models.KdfConfig
	Email                     string
	AccountCryptographicState string
	Method                    models.UnlockMethod
}

// CryptoClient establishes cryptographic sessions.
type CryptoClient interface {
	// InitializeUserCrypto recovers the user key according to req.Method and
	// installs it into the session in one atomic step. Any failure leaves
	// the session untouched. Returns ErrInvalidRequest (wrapped) for a
	// malformed request and crypto.ErrDecryptionFailed for a wrong secret.
	InitializeUserCrypto(ctx context.Context, req InitializeUserCryptoRequest) error
}

// Service hands out scoped client handles. Every acquired handle must be
// released; defer the release right after a successful acquire.
type Service interface {
	// Client acquires a handle for the given user.
	Client(userID models.UserID) (*ClientRef, error)
}
