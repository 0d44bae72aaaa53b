package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the subject's user id. UserID is a
// pointer so a token without the claim can be told apart from id 0.
type Claims struct {
	jwt.RegisteredClaims
	UserID *int64 `json:"user_id,omitempty"`
}

// TokenCodec issues and verifies HS256 session tokens. The secret is fixed
// at construction; the codec is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewTokenCodec returns a codec keyed by secret. A ttl of zero issues tokens
// without an exp claim, which then stay valid for as long as the secret does.
// A negative ttl is rejected.
func NewTokenCodec(secret []byte, ttl time.Duration) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, common.ErrorMissingSecret
	}
	if ttl < 0 {
		return nil, fmt.Errorf("token ttl must not be negative: %s", ttl)
	}
	return &TokenCodec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithStrictDecoding(),
		),
	}, nil
}

// Issue signs a token carrying userID.
func (c *TokenCodec) Issue(userID int64) (string, error) {
	claims := Claims{UserID: &userID}
	if c.ttl > 0 {
		now := c.now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature and returns the user id. Expired tokens yield
// common.ErrTokenExpired; every other failure is common.ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := c.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == nil {
		return 0, common.ErrInvalidToken
	}

	return *claims.UserID, nil
}
