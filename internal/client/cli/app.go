// Package cli implements the interactive SecureConnect client: a small
// REPL for signing up, logging in, and probing username availability.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/secureconnect/internal/client/api"
	"github.com/dmitrijs2005/secureconnect/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	reader *bufio.Reader

	// identity from the last successful login
	userName string
	token    string
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: api.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}
