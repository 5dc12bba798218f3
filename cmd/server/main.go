// Package main is the entry point for the posting service server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/postboard/postboard/internal/clients/mail"
	"github.com/postboard/postboard/internal/clients/render"
	"github.com/postboard/postboard/internal/server"
	"github.com/postboard/postboard/internal/server/config"
	"github.com/postboard/postboard/internal/server/handlers"
	"github.com/postboard/postboard/internal/server/service"
	"github.com/postboard/postboard/internal/server/storage/sqlite"
	"github.com/postboard/postboard/internal/server/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	tokens := token.Config{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	}

	srv := server.New(logger, cfg.ListenAddr, server.Handlers{
		Auth:     handlers.NewAuthHandler(logger, service.NewAuth(logger, store, tokens)),
		Posts:    handlers.NewPostsHandler(logger, service.NewPosts(logger, store), tokens),
		External: handlers.NewExternalHandler(logger, render.New(cfg.RendererURL), mail.New(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailTo)),
		Health:   handlers.NewHealthHandler(logger, Version),
	})

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Postboard Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
