// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/cryptox"
)

// Config holds runtime settings for the userdir server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses of the two transports.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Required.
//   - TokenDomain: Domain attribute of the jwt cookie.
//   - TokenValidityDuration: session token lifetime; zero means tokens never expire.
//   - PasswordHasher: credential digest, "sha256" or "argon2id".
//   - CORS*: cross-origin policy of the HTTP endpoint.
type Config struct {
	EndpointAddrGRPC      string        `env:"GRPC_ADDRESS"`
	EndpointAddrHTTP      string        `env:"HTTP_ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_URL"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenDomain           string        `env:"JWT_DOMAIN"`
	TokenValidityDuration time.Duration `env:"JWT_TTL"`
	PasswordHasher        string        `env:"PASSWORD_HASHER"`
	CORSAllowedOrigins    []string      `env:"ACCESS_CONTROL_ALLOW_ORIGIN"`
	CORSAllowedMethods    []string      `env:"ACCESS_CONTROL_ALLOW_METHODS"`
	CORSAllowedHeaders    []string      `env:"ACCESS_CONTROL_ALLOW_HEADERS"`
	CORSAllowCredentials  bool          `env:"ACCESS_CONTROL_ALLOW_CREDENTIALS"`
}

// LoadDefaults populates Config with development defaults. SecretKey is
// left empty on purpose so a deployment without one fails Validate.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = "127.0.0.1:25565"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.TokenDomain = "localhost"
	c.TokenValidityDuration = 0
	c.PasswordHasher = cryptox.HasherSHA256
	c.CORSAllowedOrigins = []string{"http://localhost:3000"}
	c.CORSAllowedMethods = []string{"GET", "POST", "OPTIONS"}
	c.CORSAllowedHeaders = []string{"Content-Type"}
	c.CORSAllowCredentials = true
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return common.ErrorMissingSecret
	}
	if _, err := cryptox.HasherByName(c.PasswordHasher); err != nil {
		return err
	}
	if c.TokenValidityDuration < 0 {
		return fmt.Errorf("token validity duration must not be negative: %s", c.TokenValidityDuration)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
