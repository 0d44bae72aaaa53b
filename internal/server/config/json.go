package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
	"github.com/dmitrijs2005/userdir/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from a zero value so a partial file only overrides
// what it names. Durations accept "30m" style strings or nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenDomain           *string         `json:"token_domain"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	PasswordHasher        *string         `json:"password_hasher"`
	CORSAllowedOrigins    []string        `json:"cors_allowed_origins"`
	CORSAllowedMethods    []string        `json:"cors_allowed_methods"`
	CORSAllowedHeaders    []string        `json:"cors_allowed_headers"`
	CORSAllowCredentials  *bool           `json:"cors_allow_credentials"`
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setSliceIf(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}

// parseJson loads configuration values from the JSON file named by -c or
// -config in args. Without either flag nothing is loaded. An unreadable
// file or invalid JSON panics.
func parseJson(config *Config, args []string) {

	jsonConfigFile := flagx.ConfigFilePath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.TokenDomain, c.TokenDomain)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setIf(&config.PasswordHasher, c.PasswordHasher)
	setSliceIf(&config.CORSAllowedOrigins, c.CORSAllowedOrigins)
	setSliceIf(&config.CORSAllowedMethods, c.CORSAllowedMethods)
	setSliceIf(&config.CORSAllowedHeaders, c.CORSAllowedHeaders)
	setIf(&config.CORSAllowCredentials, c.CORSAllowCredentials)
}
