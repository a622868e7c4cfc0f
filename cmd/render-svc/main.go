// cmd/render-svc/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"resume-services/internal/common/config"
	"resume-services/internal/common/logger"
	"resume-services/internal/common/server"
	"resume-services/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	engine := server.NewEngine("render-svc", log)
	render.NewHandler(render.NewStubRenderer(), log).Register(engine)

	ctx := cancelOnSignal()
	if err := server.Run(ctx, "render-svc", cfg.Render.ListenAddr, engine, cfg.Server, zapLog); err != nil {
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
