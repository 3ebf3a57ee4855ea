// Package server initializes and runs the registry backend: it opens the
// database, applies migrations, wires the services and starts the gRPC
// endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"vaxreg/internal/logging"
	"vaxreg/internal/server/config"
	"vaxreg/internal/server/feed"
	gs "vaxreg/internal/server/grpc"
	"vaxreg/internal/server/identity"
	"vaxreg/internal/server/records"
	"vaxreg/internal/server/storage"
	"vaxreg/internal/server/users"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	storage         storage.RepositoryManager
	identityService *identity.Service
	userService     *users.Service
	recordService   *records.Service
	hub             *feed.Hub
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	sm, err := storage.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hub := feed.NewHub(logger)

	is := identity.NewService(sm.Identities(), sm.Sessions(), []byte(cfg.SecretKey),
		cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration)
	us := users.NewService(sm.Users())
	rs := records.NewService(sm.Records(), hub)

	return &App{
		config:          cfg,
		logger:          logger,
		storage:         sm,
		identityService: is,
		userService:     us,
		recordService:   rs,
		hub:             hub,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.identityService, app.userService, app.recordService, app.hub,
		app.config.SecretKey, app.config.APIKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.storage.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage", "err", err)
	}
}
