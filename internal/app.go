package internal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"wellsync/internal/providers"
	"wellsync/internal/structures"
	wsync "wellsync/internal/sync"

	"github.com/roylee0704/gron"
)

// SyncRunner is one sync pass; a returned error is run-aborting.
type SyncRunner interface {
	Run(ctx context.Context) error
}

type App struct {
	syncer SyncRunner
	conf   *structures.Config
	logger providers.Logger
}

func NewApp(syncer *wsync.Syncer, conf *structures.Config, logger providers.Logger) *App {
	return &App{
		syncer: syncer,
		conf:   conf,
		logger: logger,
	}
}

// Run executes a single sync pass, or, when a sync interval is configured,
// keeps running one pass per interval until SIGINT/SIGTERM. In daemon mode
// a failed pass is logged and the next tick tries again.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof(providers.TypeApp, "Starting %s", a.conf.AppName)

	if a.conf.General.SyncInterval <= 0 {
		return a.syncer.Run(ctx)
	}

	runOnce := func() {
		if err := a.syncer.Run(ctx); err != nil {
			a.logger.Errorf(providers.TypeApp, "Sync run failed: %s", err)
		}
	}
	runOnce()

	cron := gron.New()
	cron.AddFunc(gron.Every(a.conf.General.SyncInterval), runOnce)
	cron.Start()
	a.logger.Infof(providers.TypeApp, "Scheduled sync every %s", a.conf.General.SyncInterval)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case <-ctx.Done():
	}

	cron.Stop()
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

func (a *App) Close() {
	a.logger.Close()
}
