package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKdfConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     KdfConfig
		wantErr bool
	}{
		{name: "default pbkdf2", cfg: DefaultKdfConfig()},
		{name: "default argon2id", cfg: DefaultArgon2KdfConfig()},
		{name: "zero value", cfg: KdfConfig{}, wantErr: true},
		{name: "pbkdf2 below minimum", cfg: KdfConfig{Type: KdfPBKDF2SHA256, Iterations: 50_000}, wantErr: true},
		{name: "argon2id no memory", cfg: KdfConfig{Type: KdfArgon2id, Iterations: 3, Parallelism: 4}, wantErr: true},
		{name: "argon2id no parallelism", cfg: KdfConfig{Type: KdfArgon2id, Iterations: 3, MemoryMiB: 64}, wantErr: true},
		{name: "unknown type", cfg: KdfConfig{Type: KdfType(42), Iterations: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidKdfConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestKdfConfig_IsZero(t *testing.T) {
	assert.True(t, KdfConfig{}.IsZero())
	assert.False(t, DefaultKdfConfig().IsZero())
}

func TestUnlockMethod_Validate(t *testing.T) {
	assert.NoError(t, UnlockMethod{DecryptedKey: &DecryptedKeyMethod{}}.Validate())
	assert.ErrorIs(t, UnlockMethod{}.Validate(), ErrAmbiguousUnlockMethod)
	assert.ErrorIs(t, UnlockMethod{
		PinEnvelope:  &PinEnvelopeMethod{},
		DecryptedKey: &DecryptedKeyMethod{},
	}.Validate(), ErrAmbiguousUnlockMethod)
}
