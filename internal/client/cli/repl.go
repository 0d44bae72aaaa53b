package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Users(ctx context.Context) error
	User(ctx context.Context, login string) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the userdir CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help          show available commands
//	  - register      create an account
//	  - login         authenticate
//	  - users         list accounts
//	  - user <login>  show one account
//	  - ping          check the server
//	  - exit | quit   leave the program
//
//	Logged in, additionally:
//	  - profile       show the current account
//	  - logout        log out
//
// Errors returned by command handlers are ignored here; handlers log their
// own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ud %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, users, user <login>, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, users, user <login>, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "users":
			_ = a.Users(ctx)

		case "user":
			if len(args) == 0 {
				printlnFn("Usage: user <login>")
				continue
			}
			_ = a.User(ctx, args[0])

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
