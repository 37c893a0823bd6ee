package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a field is left unset by every
// source.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "unlock.db"
	DefaultKdfConcurrency = 2

	// DefaultFlagEnvPrefix is the prefix of the per-flag environment
	// variables polled at runtime.
	DefaultFlagEnvPrefix = "UNLOCK_FLAG_"
)

// ClientAPI holds network settings used by the outbound transport layer.
type ClientAPI struct {
	// Address is the accounts API base URL.
	Address string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string for the local credential cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains worker pool settings.
type ClientWorkers struct {
	// KdfConcurrency caps concurrent key derivations.
	KdfConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains the accounts API address and timeout.
	API ClientAPI
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains worker pool settings.
	Workers ClientWorkers
	// FlagEnvPrefix is the environment prefix for runtime feature flags.
	FlagEnvPrefix string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills in defaults for unset fields and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			Address:        cfg.API.Address,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers:       ClientWorkers{KdfConcurrency: cfg.Workers.KdfConcurrency},
		FlagEnvPrefix: DefaultFlagEnvPrefix,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Workers.KdfConcurrency == 0 {
		cfg.Workers.KdfConcurrency = DefaultKdfConcurrency
	}
}
