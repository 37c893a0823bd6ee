package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/mock"
	"github.com/MKhiriev/go-unlock-core/internal/service"
	"github.com/MKhiriev/go-unlock-core/models"
)

func runApp(t *testing.T, services *service.ClientServices, input string) string {
	t.Helper()

	var out bytes.Buffer
	app, err := NewApp(services, strings.NewReader(input), &out, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestApp_UnlockWithPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	unlock := mock.NewMockUnlockService(ctrl)
	unlock.EXPECT().UnlockWithPin(gomock.Any(), models.UserID("user-1"), "1234").Return(nil)

	out := runApp(t, &service.ClientServices{Unlock: unlock}, "unlock-pin user-1 1234\nexit\n")
	assert.Contains(t, out, "unlocked")
}

func TestApp_EmailConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	changeEmail := mock.NewMockChangeEmailService(ctrl)
	changeEmail.EXPECT().
		ConfirmChange(gomock.Any(), models.UserID("user-1"), "password", "new@example.com", "token").
		Return(nil)

	out := runApp(t, &service.ClientServices{ChangeEmail: changeEmail}, "email-confirm user-1 password new@example.com token\nexit\n")
	assert.Contains(t, out, "email changed")
}

func TestApp_UnknownCommand(t *testing.T) {
	out := runApp(t, &service.ClientServices{}, "frobnicate\nexit\n")
	assert.Contains(t, out, "unknown command")
}

func TestApp_UsageErrors(t *testing.T) {
	out := runApp(t, &service.ClientServices{}, "unlock-pin user-1\nexit\n")
	assert.Contains(t, out, "usage: unlock-pin")
}

func TestNewApp_NilServices(t *testing.T) {
	_, err := NewApp(nil, strings.NewReader(""), &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)
}
