// Package server wires the userdir components together and runs the gRPC
// and HTTP endpoints until the process is signalled to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/userdir/internal/cryptox"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userdir/internal/server/rest"
	"github.com/dmitrijs2005/userdir/internal/server/services"
	"github.com/go-chi/cors"

	gs "github.com/dmitrijs2005/userdir/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
	gate        *auth.Gate
}

// NewApp validates c, opens the user store and builds the services.
// Any error here is a startup failure.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSONLogger(os.Stdout, slog.LevelInfo))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	hasher, err := cryptox.HasherByName(c.PasswordHasher)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	tokens, err := auth.NewTokenCodec([]byte(c.SecretKey), c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}

	repos, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(repos.Users(), cryptox.NewCodec(hasher), tokens, logger)
	gate := auth.NewGate(tokens, us, logger)

	return &App{config: c, logger: logger, repos: repos, userService: us, gate: gate}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.gate)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := rest.NewRouter(rest.RouterOptions{
		Users:       app.userService,
		Gate:        app.gate,
		Logger:      app.logger,
		TokenDomain: app.config.TokenDomain,
		CORSOptions: &cors.Options{
			AllowedOrigins:   app.config.CORSAllowedOrigins,
			AllowedMethods:   app.config.CORSAllowedMethods,
			AllowedHeaders:   app.config.CORSAllowedHeaders,
			AllowCredentials: app.config.CORSAllowCredentials,
		},
	})

	s := rest.NewServer(app.config.EndpointAddrHTTP, router, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both endpoints until ctx is cancelled, a signal arrives or
// either server fails, then releases the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
