// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/service"
	"github.com/MKhiriev/go-unlock-core/models"
)

// App is the interactive client shell over the unlock and email-change
// services.
type App struct {
	services *service.ClientServices

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp builds the client shell reading commands from in and writing
// replies to out.
func NewApp(services *service.ClientServices, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}
	return &App{services: services, in: in, out: out, logger: log}, nil
}

// Run reads commands line by line until EOF, "exit" or context cancellation.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "commands: unlock-pin, unlock-password, unlock-bio, email-token, email-confirm, exit")

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		if args[0] == "exit" {
			return nil
		}
		if err := a.dispatch(ctx, args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	cmd, args := args[0], args[1:]

	switch cmd {
	case "unlock-pin":
		if len(args) != 2 {
			return fmt.Errorf("usage: unlock-pin <user-id> <pin>")
		}
		if err := a.services.Unlock.UnlockWithPin(ctx, models.UserID(args[0]), args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "unlocked")

	case "unlock-password":
		if len(args) != 2 {
			return fmt.Errorf("usage: unlock-password <user-id> <password>")
		}
		if err := a.services.Unlock.UnlockWithMasterPassword(ctx, models.UserID(args[0]), args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "unlocked")

	case "unlock-bio":
		if len(args) != 1 {
			return fmt.Errorf("usage: unlock-bio <user-id>")
		}
		if err := a.services.Unlock.UnlockWithBiometrics(ctx, models.UserID(args[0])); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "unlocked")

	case "email-token":
		if len(args) != 3 {
			return fmt.Errorf("usage: email-token <user-id> <password> <new-email>")
		}
		if err := a.services.ChangeEmail.RequestChangeToken(ctx, models.UserID(args[0]), args[1], args[2]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "token sent to the new address")

	case "email-confirm":
		if len(args) != 4 {
			return fmt.Errorf("usage: email-confirm <user-id> <password> <new-email> <token>")
		}
		if err := a.services.ChangeEmail.ConfirmChange(ctx, models.UserID(args[0]), args[1], args[2], args[3]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "email changed")

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}
