// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config stays permissive: hard requirements are checked on
// the client view in [ClientConfig.validate] after defaults are applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.API.Address == "" || cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Workers.KdfConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
