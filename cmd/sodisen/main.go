package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/config"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/server"
	"github.com/FrozenBlaze69/SODISEN-sub000/pkg/logger"
)

var (
	port    = flag.Int("port", 0, "HTTP port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	log := logger.New("sodisen", cfg.Server.DevMode)
	defer log.Sync()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
}
