package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/models"
)

type httpAccountsAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// HTTPClientConfig holds the settings of the HTTP accounts adapter.
type HTTPClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// NewHTTPAccountsAdapter constructs an HTTP/REST implementation of
// [AccountsAdapter]. It normalises and validates cfg.BaseURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPAccountsAdapter(cfg HTTPClientConfig, log *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid accounts api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAccountsAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RequestEmailToken implements [AccountsAdapter]. It POSTs the request to
// POST /accounts/email-token. A 2xx response carries no body. Returns an
// error if the request fails or the server responds with a non-2xx status.
func (h *httpAccountsAdapter) RequestEmailToken(ctx context.Context, req models.EmailTokenRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/accounts/email-token")
	if err != nil {
		return fmt.Errorf("email token request: %w", err)
	}

	return mapHTTPError(resp)
}

// ConfirmEmailChange implements [AccountsAdapter]. It POSTs the request to
// POST /accounts/email. A 2xx response means the server durably accepted the
// new credentials; callers rely on that before mutating any local state.
func (h *httpAccountsAdapter) ConfirmEmailChange(ctx context.Context, req models.EmailChangeRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/accounts/email")
	if err != nil {
		return fmt.Errorf("email change request: %w", err)
	}

	return mapHTTPError(resp)
}
