package cli

import (
	"bufio"
	"context"
	"os"

	"vaxreg/internal/client/api"
	"vaxreg/internal/client/config"
	"vaxreg/internal/client/records"
	"vaxreg/internal/client/session"
	"vaxreg/internal/logging"
)

type App struct {
	config  *config.Config
	api     api.Client
	store   *session.Store
	records *records.Service
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := api.NewRegistryClient(c.EndpointAddr, c.APIKey)
	if err != nil {
		return nil, err
	}

	logger := logging.NewText(os.Stderr)

	store := session.NewStore(apiClient, logger)
	recordService := records.NewService(apiClient)

	return &App{
		config:  c,
		api:     apiClient,
		store:   store,
		records: recordService,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	// a previously held session may still be valid
	a.store.FetchCurrentUser(ctx)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsLoggedIn()
}
