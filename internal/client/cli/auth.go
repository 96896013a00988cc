package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/virtualgarden/internal/client/client"
	"github.com/dmitrijs2005/virtualgarden/internal/common"
)

// Indirections over the interactive prompts, replaced in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register creates an account and signs straight into it.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already signed in. Log out first.")
		return nil
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.SignUp(ctx, email, password); err != nil {
		a.authFailed(err)
		return err
	}
	a.println("Account created.")

	if _, err := a.auth.SignIn(ctx, email, password); err != nil {
		a.authFailed(err)
		return err
	}
	a.printf("Welcome, %s!\n", email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already signed in. Log out first.")
		return nil
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.SignIn(ctx, email, password); err != nil {
		a.authFailed(err)
		return err
	}
	a.printf("Welcome back, %s!\n", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not signed in.")
		return nil
	}
	if err := a.auth.SignOut(ctx); err != nil {
		a.authFailed(err)
		return err
	}
	a.println("Signed out.")
	return nil
}

func (a *App) authFailed(err error) {
	if errors.Is(err, client.ErrUnavailable) {
		a.println("The garden server is unreachable. Try again later.")
		return
	}
	a.println("Error:", err.Error())
}
