package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/EmojiKombat_Go/internal/config"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
	"github.com/osse101/EmojiKombat_Go/internal/scheduler"
	"github.com/osse101/EmojiKombat_Go/internal/server"
	"github.com/osse101/EmojiKombat_Go/internal/worker"
)

// App is the fully wired server process
type App struct {
	Server    *server.Server
	Service   progression.Service
	Storage   *Storage
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// Build wires storage, catalog, events, the progression service, the idle
// accrual schedule and the HTTP server from cfg.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	storage, err := InitializeStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	persister, err := InitializePersister(storage, cfg.DeadLetterPath)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	bus := InitializeEventSystem()

	svc := progression.NewService(cat, storage.Progression, persister, bus, progression.Config{
		SessionCacheSize: cfg.SessionCacheSize,
		SessionTTL:       cfg.SessionTTL,
		MaxIdleAccrual:   cfg.MaxIdleAccrual,
	})

	pool := worker.NewPool(AccrualWorkers, AccrualQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Every(cfg.TickInterval, progression.NewAccrualJob(svc))
	slog.Info(LogMsgAccrualScheduled, "interval", cfg.TickInterval)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateLimitWindow,
	}, svc, storage.Pinger)

	return &App{
		Server:    srv,
		Service:   svc,
		Storage:   storage,
		Pool:      pool,
		Scheduler: sched,
	}, nil
}

// Shutdown stops every component built by Build
func (a *App) Shutdown(ctx context.Context) error {
	return GracefulShutdown(ctx, ShutdownComponents{
		Server:             a.Server,
		Scheduler:          a.Scheduler,
		Pool:               a.Pool,
		ProgressionService: a.Service,
		Storage:            a.Storage,
	})
}
