// Package users implements the user store: an id- and login-indexed set of
// user records with unique logins and monotonically increasing ids.
package users

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Repository is the user store contract. Implementations must be safe for
// concurrent use.
//
// Errors: SelectByID and SelectByLogin return common.ErrorNotFound on a miss;
// Insert returns common.ErrorLoginAlreadyUsed when the login is taken. Any
// other error is a backend failure.
type Repository interface {
	// SelectAll returns a snapshot of every record in id order.
	SelectAll(ctx context.Context) ([]*models.User, error)
	SelectByID(ctx context.Context, id int64) (*models.User, error)
	// SelectByLogin is an exact, case-sensitive match.
	SelectByLogin(ctx context.Context, login string) (*models.User, error)
	// Insert checks login uniqueness, allocates the next id and stores the
	// record as one atomic step, returning the new id.
	Insert(ctx context.Context, login, hash, salt string) (int64, error)
}
