package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gymwear/storeadmin/config"
	"github.com/gymwear/storeadmin/internal/app"
	"github.com/gymwear/storeadmin/internal/webui"
)

func main() {
	configPath := flag.String("c", "storeadmin.yml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	application.Init()
	defer application.Release()

	server := webui.NewServer(application)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Web.Listen)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zap.S().Errorf("server stopped: %v", err)
		}
	case sig := <-quit:
		zap.S().Infof("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zap.S().Errorf("shutdown failed: %v", err)
		}
	}
}
