package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/hotelhook/cmd/setup"
	"github.com/IsaacDSC/hotelhook/internal/cfg"
	"github.com/IsaacDSC/hotelhook/pkg/logs"
)

const shutdownTimeout = 30 * time.Second

func main() {
	conf, err := cfg.Load()
	if err != nil {
		logs.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	logger := logs.New(
		logs.WithLevel(logs.ParseLevel(conf.Log.Level)),
		logs.WithJSONFormat(conf.Log.Format != "text"),
	)
	logs.SetDefault(logger)

	srv, err := setup.NewServer(conf)
	if err != nil {
		logger.Error("failed to build server", "error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting HTTP server", "addr", srv.Addr, "extractor", string(conf.ExtractorMode))
	if err := serve(ctx, srv); err != nil {
		logger.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logs.Info("Shutting down servers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logs.Info("All servers shutdown complete")
	return nil
}
