package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tic-tac-toe-web/internal/api/controller"
	"ctchen222/tic-tac-toe-web/internal/api/service"
	"ctchen222/tic-tac-toe-web/internal/config"
	"ctchen222/tic-tac-toe-web/internal/logger"
	"ctchen222/tic-tac-toe-web/internal/server"
	"ctchen222/tic-tac-toe-web/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the yaml config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.LogLevel)
	gin.SetMode(ginMode(cfg.LogLevel))

	// Create services
	gameService := service.NewGameService()

	// Create controllers
	gameController := controller.NewGameController(gameService)

	// Create the Gin-based server
	srv := server.NewServer(ctx, gameController, server.Options{
		StaticDir:      cfg.HTTP.StaticDir,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Room:           cfg.Room.RoomOptions(),
	})

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: otelhttp.NewHandler(srv.Engine(), "http.server"),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ListenAndServe failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exiting")
}

// ginMode keeps gin's route dump and debug warnings for debug logging only.
func ginMode(logLevel string) string {
	if logger.ParseLevel(logLevel) == slog.LevelDebug {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
