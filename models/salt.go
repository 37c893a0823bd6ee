package models

import "strings"

// Salt is the master-password KDF salt. It is canonically derived from the
// account email, so exactly one salt is "current" per account; changing the
// email produces a new salt.
type Salt string

// EmailToSalt maps an email address to its canonical salt: trimmed and
// lower-cased. The normalization must match the server's derivation exactly,
// otherwise authentication fails silently.
//
// An empty email is a programming error and panics — every caller obtains the
// email from a validated account record or a non-empty form field.
func EmailToSalt(email string) Salt {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		panic("models: EmailToSalt called with empty email")
	}
	return Salt(normalized)
}

// String returns the salt value.
func (s Salt) String() string { return string(s) }

// IsZero reports whether the salt is unset.
func (s Salt) IsZero() bool { return s == "" }
