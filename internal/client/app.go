package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/adapter"
	"github.com/kinkeeper-app/kinkeeper/internal/config"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/service"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
)

const defaultFlushInterval = 2 * time.Minute

// App owns the client-side object graph. The facades in Services are the
// API surface an embedding UI talks to; Run only keeps the background flush
// job alive.
type App struct {
	Services *service.ClientServices
	Remote   adapter.RemoteRepository

	db      *store.ClientDB
	workers config.Workers
	logger  *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	db, err := store.OpenClientDB(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open client cache: %w", err)
	}

	cache := store.NewEntityCache(db, log.GetChildLogger())
	queue := store.NewMutationQueue(db, log.GetChildLogger())

	remote := adapter.NewHTTPRemote(adapter.HTTPRemoteConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})
	connectivity := adapter.NewHTTPConnectivity(cfg.Adapter.BaseURL, cfg.Adapter.RequestTimeout)

	services := service.NewClientServices(cache, queue, remote, connectivity, log)

	return &App{
		Services: services,
		Remote:   remote,
		db:       db,
		workers:  cfg.Workers,
		logger:   log,
	}, nil
}

// Run starts the background flush job and blocks until the process receives
// a termination signal. Queued mutations survive restarts, so shutting down
// mid-flush loses nothing.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	interval := a.workers.FlushInterval
	if interval <= 0 {
		interval = defaultFlushInterval
	}

	a.Services.FlushJob.Start(ctx, interval)
	defer a.Services.FlushJob.Stop()

	a.logger.Info().Dur("flush_interval", interval).Msg("client app running")

	<-ctx.Done()
	a.logger.Info().Msg("client app shutting down")

	return a.Close()
}

// Close releases the local database. Safe to call after Run returns.
func (a *App) Close() error {
	return a.db.Close()
}
