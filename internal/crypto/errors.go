package crypto

import "errors"

var (
	// ErrDecryptionFailed covers every unwrap failure. Callers surface it as
	// a generic invalid-credential error; the cause (wrong key, short blob,
	// tampered ciphertext) is deliberately not distinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	ErrWrapFailed     = errors.New("key wrap failed")
	ErrUnsupportedKdf = errors.New("unsupported kdf config")
)
