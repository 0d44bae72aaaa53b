package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{
			"-a", "127.0.0.1:9090", "-w", "127.0.0.1:8080", "-d", "db", "-s", "secret",
			"-j", "example.org", "-t", "15", "-k", "argon2id",
		},
			start: &Config{},
			expected: &Config{
				EndpointAddrGRPC:      "127.0.0.1:9090",
				EndpointAddrHTTP:      "127.0.0.1:8080",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenDomain:           "example.org",
				TokenValidityDuration: 15 * time.Minute,
				PasswordHasher:        "argon2id",
			}},
		{name: "unknown flags are ignored", args: []string{"-c", "cfg.json", "-x", "1", "-s", "secret"},
			start:    &Config{},
			expected: &Config{SecretKey: "secret"}},
		{name: "absent -t keeps finer duration", args: []string{"-s", "k"},
			start:    &Config{TokenValidityDuration: 90 * time.Second},
			expected: &Config{SecretKey: "k", TokenValidityDuration: 90 * time.Second}},
		{name: "bad int panics", args: []string{"-t", "soon"}, start: &Config{}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.start

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
