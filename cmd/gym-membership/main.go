package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym-membership-go/internal/app"
	"gym-membership-go/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewFromEnv()
	log.Info("app: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("app: init failed", "err", err)
		return 1
	}

	srv := application.HTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		log.Info("http: listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	code := 0
	select {
	case <-ctx.Done():
		log.Info("app: shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			code = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http: graceful shutdown failed", "err", err)
		code = 1
	}
	if err := application.Close(); err != nil {
		log.Error("app: close failed", "err", err)
		code = 1
	}

	if code == 0 {
		log.Info("app: stopped")
	}
	return code
}
