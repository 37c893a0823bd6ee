package store

import (
	"context"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
)

// ClientStorages bundles every client-side store behind one constructor so
// wiring code deals with a single value.
type ClientStorages struct {
	Accounts     AccountStore
	PinEnvelopes PinEnvelopeStore
	LegacyKeys   LegacyKeyStore
	Sessions     SessionStore
}

// NewClientStorages opens the sqlite credential cache at dsn and constructs
// the in-memory session store.
func NewClientStorages(ctx context.Context, dsn string, log *logger.Logger) (*ClientStorages, error) {
	sqlite, err := NewClientSQLiteStore(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Accounts:     sqlite,
		PinEnvelopes: sqlite,
		LegacyKeys:   sqlite,
		Sessions:     NewSessionStore(),
	}, nil
}
