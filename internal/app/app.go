package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sockroom/sockroom-server/internal/config"
	"github.com/sockroom/sockroom-server/internal/core"
	transporthttp "github.com/sockroom/sockroom-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server *stdhttp.Server
	ctrl   *core.Controller
	cfg    config.Config
	log    *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	ctrl := core.NewController(logger, core.Options{
		ClientBuffer: cfg.ClientBuffer,
	})
	server := transporthttp.NewServer(ctrl, cfg, logger)

	return &App{
		server: server,
		ctrl:   ctrl,
		cfg:    cfg,
		log:    logger,
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	if a.cfg.RoomSweepInterval > 0 {
		go a.runJanitor(ctx)
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}

// runJanitor periodically evicts rooms that have sat empty beyond the
// configured grace period.
func (a *App) runJanitor(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.RoomSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := a.ctrl.Directory().SweepEmpty(a.cfg.RoomEmptyGrace); n > 0 {
				a.log.Info().Int("rooms", n).Msg("evicted empty rooms")
			}
		case <-ctx.Done():
			return
		}
	}
}
