package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		API: ClientAPI{
			Address:        "https://api.example.com",
			RequestTimeout: 30 * time.Second,
		},
		Storage:       ClientStorage{DB: ClientDB{DSN: "unlock.db"}},
		Workers:       ClientWorkers{KdfConcurrency: 2},
		FlagEnvPrefix: DefaultFlagEnvPrefix,
	}
}

func TestClientConfigValidate(t *testing.T) {
	require.NoError(t, validClientConfig().validate())

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"empty api address", func(c *ClientConfig) { c.API.Address = "" }, ErrInvalidAPIConfigs},
		{"zero timeout", func(c *ClientConfig) { c.API.RequestTimeout = 0 }, ErrInvalidAPIConfigs},
		{"negative concurrency", func(c *ClientConfig) { c.Workers.KdfConcurrency = -1 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientConfigApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{API: ClientAPI{Address: "https://api.example.com"}}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultKdfConcurrency, cfg.Workers.KdfConcurrency)
}
