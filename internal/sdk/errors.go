package sdk

import "errors"

var ErrInvalidRequest = errors.New("invalid crypto initialization request")
