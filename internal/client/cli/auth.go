package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readCredentials prompts for a login and password and checks the length
// bounds locally so obviously bad input never reaches the server. The
// caller must wipe the returned password.
func (a *App) readCredentials() (string, []byte, error) {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}

	if err := common.ValidateCredentials(login, string(password)); err != nil {
		common.WipeByteArray(password)
		return "", nil, err
	}
	return login, password, nil
}

// Register prompts for a login and password and creates the account.
//
// On success it prints the assigned id. The password byte slice is wiped
// before returning. Any I/O, validation or service error is logged and
// returned.
func (a *App) Register(ctx context.Context) error {
	login, password, err := a.readCredentials()
	if err != nil {
		log.Printf("Registration failed: %s", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Register(ctx, login, password)
	if err != nil {
		log.Printf("Registration failed: %s", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Registered %s with id %d\n", u.Login, u.ID)
	return nil
}

// Login prompts for credentials and authenticates. On success the client
// keeps the session token and the prompt shows the login.
func (a *App) Login(ctx context.Context) error {
	login, password, err := a.readCredentials()
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, login, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	a.userName = login
	a.setMode(ModeOnline)
	return nil
}

// Logout drops the session locally and tells the server.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	if err := a.api.Logout(ctx); err != nil {
		log.Printf("Logout: %s", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
