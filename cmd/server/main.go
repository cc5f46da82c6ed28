package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/umkm-ai/finance-assistant/api/handlers"
	"github.com/umkm-ai/finance-assistant/api/routes"
	"github.com/umkm-ai/finance-assistant/config"
	"github.com/umkm-ai/finance-assistant/internal/attachment"
	"github.com/umkm-ai/finance-assistant/internal/llm"
	"github.com/umkm-ai/finance-assistant/internal/service/chat"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
	"github.com/umkm-ai/finance-assistant/pkg/staging"
)

func main() {
	cfg := config.Load()

	// init logger
	log, err := logger.NewLogger(
		logger.WithLevel(cfg.LogLevel),
		logger.WithEncoding("json"),
		logger.WithOutputPaths([]string{"stdout", "logs/app.log"}),
	)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// init upload staging
	store, err := staging.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to init upload staging:", logger.Error(err))
	}

	// init pipeline, gateway, service
	pipeline := attachment.NewPipeline(log)
	gateway := llm.NewGateway(cfg, log)
	chatService := chat.NewService(store, pipeline, gateway, log)

	// init handlers
	h := handlers.NewHandlers(chatService, gateway.Configured(), log)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, h, cfg.PublicDir)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// start server
	go func() {
		log.Info("Server starting", logger.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error:", logger.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown:", logger.Error(err))
	}
}
