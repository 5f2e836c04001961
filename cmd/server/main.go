package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scamgame/internal/config"
	"scamgame/internal/gemini"
	"scamgame/internal/logging"
	"scamgame/internal/observability"
	"scamgame/internal/scenario"
	"scamgame/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if err := config.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		Development: !cfg.Production(),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	tp, err := observability.InitTracing(ctx, observability.LoadConfigFromEnv(cfg.AppEnv, version))
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}

	apiKey := config.APIKey()
	if apiKey == "" {
		logger.Warn("AI_STUDIO_API_KEY not set; generate requests will fail until it is configured")
	}
	client, err := gemini.New(ctx, gemini.Config{APIKey: apiKey, Model: cfg.GeminiModel})
	if err != nil {
		logger.Fatal("init gemini client", zap.Error(err))
	}

	svc := scenario.NewService(client, logger.Named("scenario"), scenario.Options{
		Temperature: cfg.GeminiTemperature,
	})
	router := server.New(server.Deps{
		Logger:         logger,
		Scenarios:      svc,
		Provider:       client,
		Diagnostics:    cfg.Diagnostics(),
		AccessKey:      cfg.AccessKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}
	go func() {
		logger.Info("starting HTTP server",
			zap.String("addr", srv.Addr),
			zap.String("model", client.ModelName()),
			zap.String("env", cfg.AppEnv),
			zap.Bool("tracing", tp.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server forced to shutdown", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", zap.Error(err))
	}
}
