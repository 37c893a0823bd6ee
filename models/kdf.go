// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// KdfType identifies the key-derivation algorithm configured for an account.
type KdfType int

const (
	// KdfPBKDF2SHA256 is PBKDF2 with HMAC-SHA256.
	KdfPBKDF2SHA256 KdfType = 0
	// KdfArgon2id is the memory-hard Argon2id function.
	KdfArgon2id KdfType = 1
)

// Default cost parameters. PBKDF2 iterations follow the current OWASP
// recommendation; Argon2id parameters match the values the server provisions
// for new accounts.
const (
	DefaultPBKDF2Iterations  = 600_000
	DefaultArgon2Iterations  = 3
	DefaultArgon2MemoryMiB   = 64
	DefaultArgon2Parallelism = 4

	MinPBKDF2Iterations = 100_000
	MinArgon2MemoryMiB  = 16
)

var ErrInvalidKdfConfig = errors.New("invalid kdf config")

// KdfConfig holds the per-account key-derivation parameters. It is fetched
// once per operation and treated as immutable afterwards.
type KdfConfig struct {
	Type KdfType `json:"kdfType"`

	// Iterations is the PBKDF2 iteration count or the Argon2id time cost,
	// depending on Type.
	Iterations int `json:"iterations"`

	// MemoryMiB and Parallelism apply to Argon2id only.
	MemoryMiB   int `json:"memory,omitempty"`
	Parallelism int `json:"parallelism,omitempty"`
}

// DefaultKdfConfig returns the PBKDF2-SHA256 configuration assigned to
// accounts that have never been migrated to a memory-hard KDF.
func DefaultKdfConfig() KdfConfig {
	return KdfConfig{Type: KdfPBKDF2SHA256, Iterations: DefaultPBKDF2Iterations}
}

// DefaultArgon2KdfConfig returns the Argon2id configuration provisioned for
// new accounts.
func DefaultArgon2KdfConfig() KdfConfig {
	return KdfConfig{
		Type:        KdfArgon2id,
		Iterations:  DefaultArgon2Iterations,
		MemoryMiB:   DefaultArgon2MemoryMiB,
		Parallelism: DefaultArgon2Parallelism,
	}
}

// Validate checks the cost parameters against the minimums the server
// enforces. A zero-value KdfConfig is invalid.
func (k KdfConfig) Validate() error {
	switch k.Type {
	case KdfPBKDF2SHA256:
		if k.Iterations < MinPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 iterations %d below minimum %d", ErrInvalidKdfConfig, k.Iterations, MinPBKDF2Iterations)
		}
	case KdfArgon2id:
		if k.Iterations < 1 {
			return fmt.Errorf("%w: argon2id iterations must be positive", ErrInvalidKdfConfig)
		}
		if k.MemoryMiB < MinArgon2MemoryMiB {
			return fmt.Errorf("%w: argon2id memory %d MiB below minimum %d MiB", ErrInvalidKdfConfig, k.MemoryMiB, MinArgon2MemoryMiB)
		}
		if k.Parallelism < 1 {
			return fmt.Errorf("%w: argon2id parallelism must be positive", ErrInvalidKdfConfig)
		}
	default:
		return fmt.Errorf("%w: unknown kdf type %d", ErrInvalidKdfConfig, k.Type)
	}

	return nil
}

// IsZero reports whether the config has never been populated. Used by callers
// that must distinguish "absent" from "invalid".
func (k KdfConfig) IsZero() bool {
	return k == KdfConfig{}
}
