// Package auth holds the session token codec and the session gate that
// transports put in front of protected operations.
package auth

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// TokenVerifier decodes a session token into a user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserResolver loads the user a verified token refers to.
type UserResolver interface {
	GetOneByID(ctx context.Context, id int64) (*models.User, error)
}

// Gate admits a request only when it carries a valid token for an existing
// user. It keeps no state between requests.
type Gate struct {
	tokens TokenVerifier
	users  UserResolver
	logger logging.Logger
}

func NewGate(tokens TokenVerifier, users UserResolver, logger logging.Logger) *Gate {
	return &Gate{tokens: tokens, users: users, logger: logger.With("module", "gate")}
}

// Admit resolves token to its user. Every failure (missing token, bad
// signature, unknown user, backend error) returns common.ErrorUnauthorized;
// the underlying cause is only logged.
func (g *Gate) Admit(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		g.logger.Debug(ctx, "rejected", "reason", "missing token")
		return nil, common.ErrorUnauthorized
	}

	userID, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Debug(ctx, "rejected", "reason", err.Error())
		return nil, common.ErrorUnauthorized
	}

	user, err := g.users.GetOneByID(ctx, userID)
	if err != nil {
		g.logger.Debug(ctx, "rejected", "reason", err.Error(), "user_id", userID)
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

type ctxKey string

const userKey ctxKey = "user"

// ContextWithUser attaches the admitted user for the next stage.
func ContextWithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the user attached by ContextWithUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}
