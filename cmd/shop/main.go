package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/bootstrap"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		defaultLogger.Warn("failed to load .env file", "error", err.Error())
	}

	cfg, err := bootstrap.LoadShopConfig()
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.NewStdoutLogger(cfg.LogLevel)

	lis, err := net.Listen(networkProtocol, cfg.HTTPPort)
	if err != nil {
		logger.Error("failed to listen", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewShopApp(cfg, logger)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return app.Run(gCtx, lis)
	})
	g.Go(func() error {
		<-gCtx.Done()
		app.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("shop stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
