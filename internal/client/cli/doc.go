// Package cli provides the interactive userdir command-line client.
//
// It wires configuration, the gRPC API client and a small REPL. Typical
// flow: register or log in, then inspect the directory.
//
// Commands:
//   - register / login / logout
//   - profile: the logged-in account
//   - users: every account
//   - user <login>: one account
//   - ping: check the server and update the status line
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
