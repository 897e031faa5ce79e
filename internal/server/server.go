package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"

	"ctchen222/tic-tac-toe-web/internal/api/controller"
	"ctchen222/tic-tac-toe-web/internal/api/response"
	"ctchen222/tic-tac-toe-web/internal/player"
	"ctchen222/tic-tac-toe-web/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Options configure the HTTP surface.
type Options struct {
	StaticDir      string
	AllowedOrigins []string
	Room           room.Options
}

type Server struct {
	engine         *gin.Engine
	upgrader       websocket.Upgrader
	gameController *controller.GameController
	opts           Options
	baseCtx        context.Context
}

// NewServer creates the gin engine. Rooms are stopped when baseCtx is cancelled.
func NewServer(baseCtx context.Context, gameController *controller.GameController, opts Options) *Server {
	s := &Server{
		engine:         gin.New(),
		gameController: gameController,
		opts:           opts,
		baseCtx:        baseCtx,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	s.RegisterHandlers()
	return s
}

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterHandlers() {
	s.engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic while serving request", "path", c.Request.URL.Path, "panic", recovered)
		response.AbortWithError(c, http.StatusInternalServerError, "internal server error")
	}))

	s.engine.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponse(c, gin.H{"status": "ok"})
	})
	s.engine.GET("/ws", s.handleWebSocket)

	api := s.engine.Group("/api")
	api.POST("/evaluate", s.gameController.Evaluate)
	api.GET("/win-lines", s.gameController.WinLines)

	if s.opts.StaticDir != "" {
		s.engine.StaticFile("/", filepath.Join(s.opts.StaticDir, "index.html"))
		s.engine.Static("/assets", filepath.Join(s.opts.StaticDir, "assets"))
	}

	s.engine.NoRoute(func(c *gin.Context) {
		response.ErrorResponse(c, http.StatusNotFound, "not found")
	})
}

// checkOrigin accepts same-origin requests and any origin listed in the config.
// An empty list accepts every origin.
func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
		return true
	}
	return slices.Contains(s.opts.AllowedOrigins, origin)
}

// handleWebSocket upgrades the connection and runs one game session on it
// until the browser leaves or the server shuts down.
func (s *Server) handleWebSocket(c *gin.Context) {
	r := c.Request
	ctx, span := tracer.Start(r.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.method", r.Method),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.baseCtx, cancel)
	defer stop()

	playerID := uuid.New().String()
	roomID := uuid.New().String()
	span.SetAttributes(attribute.String("player.id", playerID), attribute.String("room.id", roomID))

	p := player.NewPlayer(playerID, conn)
	rm := room.NewRoom(roomID, p, s.opts.Room)
	if err := rm.Run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Room closed with error")
	}
}
