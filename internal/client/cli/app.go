// Package cli implements the interactive LifeTracker terminal client: a
// small REPL over the backend HTTP API for recording meals and reviewing
// calorie summaries.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/lifetracker/internal/client/api"
	"github.com/dmitrijs2005/lifetracker/internal/client/config"
)

type App struct {
	config    *config.Config
	api       *api.Client
	userEmail string
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	client := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)
	return &App{config: c, api: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}
