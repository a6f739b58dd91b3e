package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cryptorisk-service/internal/bootstrap"
	"cryptorisk-service/internal/config"
	httpserver "cryptorisk-service/internal/infrastructure/http"
	"cryptorisk-service/internal/infrastructure/logx"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	svc, err := bootstrap.BuildService(cfg)
	if err != nil {
		logger.Fatal("bootstrap service", zap.Error(err))
	}

	srv := httpserver.NewServer(svc)
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", addr),
			zap.String("provider", cfg.Provider),
			zap.String("currency", cfg.Currency),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
