package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP bind address (e.g., "127.0.0.1:25565")
//	-d string   PostgreSQL DSN
//	-s string   session token HMAC secret
//	-j string   jwt cookie domain
//	-t int      session token validity, minutes (0 disables expiry)
//	-k string   password hasher ("sha256" or "argon2id")
//
// Only the flags listed above are kept from args (see flagx.FilterArgs), so
// -c/-config and flags of other components do not collide.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-d", "-s", "-j", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.TokenDomain, "j", config.TokenDomain, "jwt cookie domain")
	fs.StringVar(&config.PasswordHasher, "k", config.PasswordHasher, "password hasher")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only has minute resolution, so a finer value from JSON or env
	// survives unless the flag is actually given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
		}
	})
}
