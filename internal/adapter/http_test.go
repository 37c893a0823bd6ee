package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) AccountsAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPAccountsAdapter(HTTPClientConfig{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPAccountsAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAccountsAdapter(HTTPClientConfig{BaseURL: "   "}, logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPAccountsAdapter(HTTPClientConfig{BaseURL: "://bad"}, logger.Nop())
	require.Error(t, err)
}

func TestRequestEmailToken_SendsWireFormat(t *testing.T) {
	var got map[string]any
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/email-token", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := a.RequestEmailToken(context.Background(), models.EmailTokenRequest{
		NewEmail:           "new@example.com",
		MasterPasswordHash: "aGFzaA==",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", got["newEmail"])
	assert.Equal(t, "aGFzaA==", got["masterPasswordHash"])
}

func TestConfirmEmailChange_SendsWireFormat(t *testing.T) {
	var got map[string]any
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/email", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := a.ConfirmEmailChange(context.Background(), models.EmailChangeRequest{
		NewEmail:              "new@example.com",
		Token:                 "mailed-token",
		MasterPasswordHash:    "ZXhpc3Rpbmc=",
		NewMasterPasswordHash: "bmV3",
		Key:                   "d3JhcHBlZA==",
	})
	require.NoError(t, err)

	assert.Equal(t, "mailed-token", got["token"])
	assert.Equal(t, "ZXhpc3Rpbmc=", got["masterPasswordHash"])
	assert.Equal(t, "bmV3", got["newMasterPasswordHash"])
	assert.Equal(t, "d3JhcHBlZA==", got["key"])
}

func TestAdapter_MapsStatusCodes(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "server said no", tt.status)
			})

			err := a.RequestEmailToken(context.Background(), models.EmailTokenRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			// Server-side validation text is propagated verbatim.
			assert.Contains(t, err.Error(), "server said no")
		})
	}
}

func TestAdapter_TransportErrorPropagates(t *testing.T) {
	a, err := NewHTTPAccountsAdapter(HTTPClientConfig{BaseURL: "http://127.0.0.1:1"}, logger.Nop())
	require.NoError(t, err)

	err = a.ConfirmEmailChange(context.Background(), models.EmailChangeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email change request")
}
