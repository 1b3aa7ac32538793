package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"github.com/mitumoni-k/HackVita3.0/internal/container"
	"github.com/mitumoni-k/HackVita3.0/internal/router"
)

//go:generate swag init -g cmd/api/main.go -d ../.. -o ../../docs

// @title        EduNexus API
// @version      1.0
// @description  Quiz generation and study assistance backed by Gemini.
// @BasePath     /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to load configuration")
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build container")
	}

	// No WriteTimeout: model calls are bounded only by the client's request context.
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(c.RouterConfig()),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		config.Logger.WithField("addr", server.Addr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("graceful shutdown failed")
	}
}
