package store

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEnvelopeNotFound   = errors.New("pin envelope not found")
	ErrPinNotEnrolled     = errors.New("user is not enrolled in pin unlock")
	ErrLegacyKeysNotFound = errors.New("legacy master keys not found")
)
