// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the remote accounts API.
//
// The primary abstraction is [AccountsAdapter], which decouples the service
// layer from the underlying protocol. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrBadRequest]
// for a rejected token, [ErrUnauthorized] for a failed identity check).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-unlock-core/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_adapter_mock.go -package=mock

// AccountsAdapter defines transport-agnostic communication with the remote
// accounts API. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values of this package.
// Server-side validation failures are propagated verbatim, never swallowed.
type AccountsAdapter interface {
	// RequestEmailToken POSTs the email-change token request. On success the
	// server mails a verification token to the new address out-of-band; the
	// response has no body.
	RequestEmailToken(ctx context.Context, req models.EmailTokenRequest) error

	// ConfirmEmailChange POSTs the email-change confirmation carrying the
	// mailed token, the identity proof under the existing salt, and the new
	// credentials. The server accepts the change durably before responding;
	// the response has no body.
	ConfirmEmailChange(ctx context.Context, req models.EmailChangeRequest) error
}
