// Command macrolog is an interactive meal logger. Each line typed is sent to
// Gemini for macro extraction and, when sync is enabled, saved to the store.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"macrolog/internal/adapter/gemini"
	"macrolog/internal/app"
	"macrolog/internal/config"
	"macrolog/internal/logger"
	"macrolog/internal/repl"
	"macrolog/internal/store"
)

// Run wires the loop from the environment and drives it over in and out.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	extractor, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}
	extraction := app.NewExtractionService(extractor, log)

	var recorder repl.Recorder
	if cfg.Sync {
		st, err := store.Open(cfg, log)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()
		recorder = app.NewMealService(st)
	} else {
		log.Info("sync disabled; meals will not be saved")
	}

	return repl.New(extraction, recorder, log).Run(ctx, in, out)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "macrolog:", err)
		os.Exit(1)
	}
}
