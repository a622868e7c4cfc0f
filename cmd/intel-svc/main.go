// cmd/intel-svc/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"resume-services/internal/common/config"
	"resume-services/internal/common/database"
	"resume-services/internal/common/logger"
	"resume-services/internal/common/server"
	"resume-services/internal/intel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	var provider intel.Provider = intel.NewStaticProvider()

	if cfg.Intel.CacheEnabled {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis init failed", zap.Error(err))
		}
		defer rdb.Close()

		ttl := time.Duration(cfg.Intel.CacheTTL) * time.Second
		provider = intel.NewCachedProvider(provider, rdb.Client, ttl, log)
		zapLog.Info("lookup cache enabled", zap.Duration("ttl", ttl))
	}

	engine := server.NewEngine("intel-svc", log)
	intel.NewHandler(provider, log).Register(engine)

	ctx := cancelOnSignal()
	if err := server.Run(ctx, "intel-svc", cfg.Intel.ListenAddr, engine, cfg.Server, zapLog); err != nil {
		zapLog.Fatal("server failed", zap.Error(err))
	}
}

func cancelOnSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}
