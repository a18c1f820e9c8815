// Command macrologd serves the meal log over a JSON HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"macrolog/internal/adapter/gemini"
	adapthttp "macrolog/internal/adapter/http"
	"macrolog/internal/app"
	"macrolog/internal/config"
	"macrolog/internal/logger"
	"macrolog/internal/store"
)

// Run is the testable entrypoint for the server. It returns once ctx is done
// and in-flight requests have drained.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()
	log.Info("starting macrolog server", zap.String("store", cfg.Store))

	extractor, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}
	st, err := store.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	h := adapthttp.New(
		app.NewMealService(st),
		app.NewDailyLogService(st),
		app.NewChartsService(st),
		app.NewExtractionService(extractor, log),
		log,
		cfg.APIKeyHash,
	).Handler()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctxShutdown)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "macrologd:", err)
		os.Exit(1)
	}
}
