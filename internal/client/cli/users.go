package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/userdir/internal/client/client"
)

func (a *App) printUser(u *client.User) {
	fmt.Fprintf(a.out, "%6d  %s\n", u.ID, u.Login)
}

// Profile shows the logged-in account.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.api.Profile(ctx)
	if err != nil {
		log.Printf("Profile: %s", err.Error())
		return err
	}
	a.printUser(u)
	return nil
}

// Users lists every account in id order.
func (a *App) Users(ctx context.Context) error {
	list, err := a.api.Users(ctx)
	if err != nil {
		log.Printf("Users: %s", err.Error())
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}
	for _, u := range list {
		a.printUser(u)
	}
	return nil
}

// User shows one account by login.
func (a *App) User(ctx context.Context, login string) error {
	u, err := a.api.User(ctx, login)
	if err != nil {
		log.Printf("User %s: %s", login, err.Error())
		return err
	}
	a.printUser(u)
	return nil
}
