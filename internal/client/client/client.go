package client

import (
	"context"
)

// User is the public view of an account as the server returns it.
type User struct {
	ID    int64
	Login string
}

type Client interface {
	Close() error
	Register(ctx context.Context, login string, password []byte) (*User, error)
	Login(ctx context.Context, login string, password []byte) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	Profile(ctx context.Context) (*User, error)
	Users(ctx context.Context) ([]*User, error)
	User(ctx context.Context, login string) (*User, error)
	Ping(ctx context.Context) error
}
