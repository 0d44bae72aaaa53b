// Package rest exposes the account service over HTTP/JSON under
// /api/v1/users. Protected routes read the session token from the jwt
// cookie and pass it through the session gate.
package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// UserService is the subset of services.UserService the handlers need.
type UserService interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetOneByLogin(ctx context.Context, login string) (*models.User, error)
	Register(ctx context.Context, login, password string) (*models.User, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// Gate admits a request carrying a valid session token.
type Gate interface {
	Admit(ctx context.Context, token string) (*models.User, error)
}

// RouterOptions controls router construction. Users, Gate and Logger are
// required; the rest fall back to defaults.
type RouterOptions struct {
	Users       UserService
	Gate        Gate
	Logger      logging.Logger
	TokenDomain string
	CORSOptions *cors.Options
	Middleware  []func(http.Handler) http.Handler
}

// DefaultCORSOptions returns the development CORS policy.
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

// NewRouter assembles a chi.Router with shared middleware, the CORS policy
// and the user routes mounted.
func NewRouter(opts RouterOptions) chi.Router {
	logger := opts.Logger.With("module", "rest")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	corsCfg := DefaultCORSOptions()
	if opts.CORSOptions != nil {
		corsCfg = *opts.CORSOptions
	}
	r.Use(cors.Handler(corsCfg))

	for _, mw := range opts.Middleware {
		if mw != nil {
			r.Use(mw)
		}
	}

	h := &handlers{
		users:       opts.Users,
		logger:      logger,
		tokenDomain: opts.TokenDomain,
	}

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", h.getUsers)
		r.Post("/registration", h.registerUser)
		r.Post("/login", h.loginUser)

		r.Group(func(r chi.Router) {
			r.Use(requireSession(opts.Gate))
			r.Get("/profile", h.getProfile)
			r.Post("/logout", h.logoutUser)
		})

		r.Get("/{login}", h.getUser)
	})

	return r
}
