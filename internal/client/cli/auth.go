package cli

import (
	"context"
	"errors"
	"os"

	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/client/services"
	"github.com/Z3MAX/Expensify/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// backend account. The outcome notification is printed; the password byte
// slice is wiped before returning. Only I/O errors are returned.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	partnerID, err := getSimpleText(a.reader, "Enter Expensify partner user ID", os.Stdout)
	if err != nil {
		return err
	}

	partnerSecret, err := getSimpleText(a.reader, "Enter Expensify partner user secret", os.Stdout)
	if err != nil {
		return err
	}

	policyID, err := getSimpleText(a.reader, "Enter Expensify policy ID", os.Stdout)
	if err != nil {
		return err
	}

	form := models.AuthForm{
		Email:             email,
		Password:          string(password),
		PartnerUserID:     partnerID,
		PartnerUserSecret: partnerSecret,
		PolicyID:          policyID,
	}

	snap, rerr := a.session.Register(ctx, form)
	if errors.Is(rerr, services.ErrBusy) {
		printlnFn("Sessão ativa. Faça logout primeiro.")
		return nil
	}
	notify(snap.Notification)
	return nil
}

// Login prompts for credentials and tries to authenticate. The outcome
// notification is printed. Only I/O errors are returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	snap, lerr := a.session.Login(ctx, email, string(password))
	if errors.Is(lerr, services.ErrBusy) {
		printlnFn("Sessão ativa. Faça logout primeiro.")
		return nil
	}
	notify(snap.Notification)
	return nil
}

// Logout discards the saved session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	snap := a.session.Logout(ctx)
	notify(snap.Notification)
	return nil
}

// Status prints the signed-in account, if any, and the backend's liveness.
func (a *App) Status(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.State != services.StateAuthenticated {
		printlnFn("Not logged in")
	} else {
		printlnFn("Logged in as", snap.User.Email)
		if snap.User.PolicyID != "" {
			printlnFn("Policy:", snap.User.PolicyID)
		}
	}

	if err := a.client.Ping(ctx); err != nil {
		printlnFn("Backend: offline")
	} else {
		printlnFn("Backend: online")
	}
	return nil
}
