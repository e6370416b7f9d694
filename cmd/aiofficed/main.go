// Command aiofficed runs the office simulation daemon: it assembles the
// roster from configuration, starts the message bus, the dispatch loop,
// and the HTTP API, and persists state on shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aioffice/aioffice/config"
	"github.com/aioffice/aioffice/internal/version"
	"github.com/aioffice/aioffice/office"
	"github.com/aioffice/aioffice/provider"
	"github.com/aioffice/aioffice/provider/mock"
	"github.com/aioffice/aioffice/provider/ollama"
	"github.com/aioffice/aioffice/server"
	"github.com/aioffice/aioffice/status"
	"github.com/aioffice/aioffice/task"
)

func main() {
	configPath := flag.String("config", "aioffice.yaml", "path to the configuration file")
	addr := flag.String("addr", "", "override the HTTP listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("aiofficed", version.String())
		return
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *addr, logger); err != nil {
		logger.Error("daemon failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, addrOverride string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}
	logger.Info("generation backend ready", "provider", gen.Name())

	var archive *task.SQLiteArchive
	if cfg.Storage.ArchivePath != "" {
		archive, err = task.NewSQLiteArchive(cfg.Storage.ArchivePath)
		if err != nil {
			return fmt.Errorf("open task archive: %w", err)
		}
		defer archive.Close()
	}

	hub := server.NewHub()
	sink := status.Tee(hub, status.NewSlog(logger))

	officeCfg := office.Config{
		Agents:             cfg.Roster(),
		Generator:          gen,
		Sink:               sink,
		Logger:             logger,
		Delays:             cfg.Delays(),
		SequentialCreative: cfg.Simulation.SequentialCreative,
	}
	if archive != nil {
		officeCfg.Archive = archive
	}
	o, err := office.New(officeCfg)
	if err != nil {
		return err
	}
	if cfg.Storage.StateFile != "" {
		if err := o.LoadState(cfg.Storage.StateFile); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go o.Bus().Run(ctx)
	go o.RunDispatch(ctx)

	srv := server.New(o, hub, server.Config{
		Addr:              cfg.Server.Addr,
		JWTSecret:         cfg.Server.Auth.JWTSecret,
		AdminUser:         cfg.Server.Auth.AdminUser,
		AdminPasswordHash: cfg.Server.Auth.AdminPasswordHash,
		TokenTTL:          cfg.Server.Auth.TokenTTL.Std(),
	}, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	if cfg.Storage.StateFile != "" {
		if err := o.SaveState(cfg.Storage.StateFile); err != nil {
			logger.Warn("failed to save state", "error", err)
		}
	}
	return nil
}

func buildGenerator(cfg *config.Config) (provider.Generator, error) {
	switch cfg.Provider.Kind {
	case "ollama":
		return ollama.New(ollama.Config{
			BaseURL: cfg.Provider.BaseURL,
			Model:   cfg.Provider.Model,
			Timeout: cfg.Provider.Timeout.Std(),
		}), nil
	case "mock":
		return mock.New(), nil
	}
	return nil, fmt.Errorf("unknown provider kind %q", cfg.Provider.Kind)
}
