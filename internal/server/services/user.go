// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and user lookups.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/cryptox"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
)

// TokenIssuer mints a session token for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// UserService provides account operations:
// - GetAll / GetOneByID / GetOneByLogin: lookups
// - Register: create users with a salted credential digest
// - Login: verify credentials and mint a session token
//
// Inputs are not validated here; transports call common.ValidateCredentials
// before Register and Login.
type UserService struct {
	repo        users.Repository
	credentials *cryptox.Codec
	tokens      TokenIssuer
	logger      logging.Logger
}

// NewUserService constructs a UserService over a user repository.
func NewUserService(repo users.Repository, credentials *cryptox.Codec, tokens TokenIssuer, logger logging.Logger) *UserService {
	return &UserService{
		repo:        repo,
		credentials: credentials,
		tokens:      tokens,
		logger:      logger.With("module", "user_service"),
	}
}

// GetAll returns every user in id order.
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	list, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, s.unexpected(ctx, "select all", err)
	}
	return list, nil
}

// GetOneByID returns common.ErrorNotFound when no user has id.
func (s *UserService) GetOneByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.unexpected(ctx, "select by id", err)
	}
	return u, nil
}

// GetOneByLogin returns common.ErrorNotFound when login is unknown.
func (s *UserService) GetOneByLogin(ctx context.Context, login string) (*models.User, error) {
	u, err := s.repo.SelectByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.unexpected(ctx, "select by login", err)
	}
	return u, nil
}

// Register stores a new user and returns the record as the store holds it.
// A taken login yields common.ErrorLoginAlreadyUsed.
func (s *UserService) Register(ctx context.Context, login, password string) (*models.User, error) {
	salt := s.credentials.GenerateSalt(common.SaltLength)
	hash := s.credentials.Hash(password, salt)

	id, err := s.repo.Insert(ctx, login, hash, salt)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyUsed) {
			return nil, common.ErrorLoginAlreadyUsed
		}
		return nil, s.unexpected(ctx, "insert", err)
	}

	u, err := s.repo.SelectByID(ctx, id)
	if err != nil {
		// The row was just written, so even NotFound is a store fault here.
		return nil, s.unexpected(ctx, "reload after insert", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login verifies the password against the stored digest and returns a
// session token. Unknown logins yield common.ErrorNotFound, digest
// mismatches common.ErrorWrongPassword.
func (s *UserService) Login(ctx context.Context, login, password string) (string, error) {
	u, err := s.repo.SelectByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", s.unexpected(ctx, "select by login", err)
	}

	if !s.credentials.Verify(password, u.Salt, u.Hash) {
		return "", common.ErrorWrongPassword
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", s.unexpected(ctx, "issue token", err)
	}

	return token, nil
}

func (s *UserService) unexpected(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "store failure", "op", op, "error", err.Error())
	return fmt.Errorf("%w: %s: %v", common.ErrorUnexpected, op, err)
}
