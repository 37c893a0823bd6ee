package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailToSalt_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  Salt
	}{
		{name: "already canonical", email: "existing@example.com", want: "existing@example.com"},
		{name: "mixed case", email: "Existing@Example.COM", want: "existing@example.com"},
		{name: "surrounding whitespace", email: "  new@example.com \n", want: "new@example.com"},
		{name: "unicode local part untouched", email: "Šarlote@example.com", want: "šarlote@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailToSalt(tt.email))
		})
	}
}

func TestEmailToSalt_Stable(t *testing.T) {
	first := EmailToSalt("user@example.com")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EmailToSalt("user@example.com"))
	}
}

func TestEmailToSalt_DistinctEmailsDistinctSalts(t *testing.T) {
	existing := EmailToSalt("existing@example.com")
	changed := EmailToSalt("new@example.com")
	assert.NotEqual(t, existing, changed)
}

func TestEmailToSalt_EmptyPanics(t *testing.T) {
	require.Panics(t, func() { EmailToSalt("   ") })
	require.Panics(t, func() { EmailToSalt("") })
}
