// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPort          = "8080"
	defaultConfigPath    = "./configs/config.yaml"
	gracefulShutdownTime = 15 * time.Second
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", defaultConfigPath, "path to config file")
	flag.Parse()

	app, cleanup, err := InitializeApp(configPath)
	if err != nil {
		// app.Logger may not exist yet, fall back to stderr
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	app.Logger.Info("using config file", zap.String("path", configPath))
	app.Logger.Info("lookup configuration",
		zap.String("role_prefix", app.Config.Lookup.RolePrefix),
		zap.Bool("username_based_primary_key", app.Config.Lookup.UsernameBasedPrimaryKey),
	)

	port := app.Config.App.Port
	if port == "" {
		port = defaultPort
	}
	addr := ":" + port

	server := &http.Server{
		Addr:    addr,
		Handler: app.Engine,
	}

	serverErr := make(chan error, 1)
	shutdownSignal := make(chan os.Signal, 1)

	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		app.Logger.Info("starting server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Error("server failed", zap.Error(err))
			serverErr <- err
		}
	}()

	select {
	case sig := <-shutdownSignal:
		app.Logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		app.Logger.Error("server error, shutting down", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTime)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		app.Logger.Error("forced shutdown, incomplete requests terminated", zap.Error(err))
	} else {
		app.Logger.Info("server stopped gracefully")
	}
}
