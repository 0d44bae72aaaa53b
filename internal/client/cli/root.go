package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root probes the server once and runs the REPL on stdin until exit.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to userdir CLI (type 'help' for commands)")

	_ = a.Ping(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
