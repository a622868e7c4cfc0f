// cmd/svc-api/main.go
//
// Bootstrap skeleton service: one acknowledgement endpoint, nothing else.
// New services start from this wiring.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-services/internal/common/config"
	"resume-services/internal/common/logger"
	"resume-services/internal/common/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	engine := server.NewEngine("svc-api", log)
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	ctx := cancelOnSignal()
	if err := server.Run(ctx, "svc-api", cfg.SvcAPI.ListenAddr, engine, cfg.Server, zapLog); err != nil {
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
