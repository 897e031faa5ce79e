package room

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ctchen222/tic-tac-toe-web/internal/game"
	"ctchen222/tic-tac-toe-web/internal/player"
	"ctchen222/tic-tac-toe-web/pkg/proto"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("room")

// Options tune the connection handling of a room.
type Options struct {
	HeartbeatInterval time.Duration
	PongWait          time.Duration
	WriteWait         time.Duration
	ReadLimit         int64
}

// DefaultOptions returns the settings used when none are configured.
func DefaultOptions() Options {
	return Options{
		HeartbeatInterval: 10 * time.Second,
		PongWait:          30 * time.Second,
		WriteWait:         10 * time.Second,
		ReadLimit:         512,
	}
}

// Room binds one browser connection to one game session.
// The session is only touched from the goroutine running Run.
type Room struct {
	ID      string
	Player  *player.Player
	session *game.Session
	sink    *frameSink
	opts    Options

	incomingMoves chan []byte
	readErr       chan error
}

// NewRoom creates a room with a fresh game for p.
func NewRoom(id string, p *player.Player, opts Options) *Room {
	sink := &frameSink{}
	return &Room{
		ID:            id,
		Player:        p,
		session:       game.NewSession(sink),
		sink:          sink,
		opts:          opts,
		incomingMoves: make(chan []byte, 10),
		readErr:       make(chan error, 1),
	}
}

// Snapshot returns the current game state.
func (r *Room) Snapshot() game.State {
	return r.session.Snapshot()
}

// Run sends the initial state and serves the connection until the browser
// goes away or ctx is cancelled. The connection is closed on return.
func (r *Room) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", r.Player.ID),
	))
	defer span.End()

	m := getMetrics()
	m.sessionOpened(ctx)
	defer m.sessionClosed(ctx)

	readCtx, cancelRead := context.WithCancel(ctx)
	defer func() {
		cancelRead()
		r.Player.Conn.Close()
		r.Player.Disconnect()
		slog.InfoContext(ctx, "Room closed", "room.id", r.ID, "player.id", r.Player.ID,
			"moves", r.session.Snapshot().Moves, "duration", time.Since(r.Player.ConnectedAt))
	}()

	slog.InfoContext(ctx, "Room opened", "room.id", r.ID, "player.id", r.Player.ID)
	r.send(ctx, proto.StateMessage(r.session.Snapshot()))

	go r.ReadPump(readCtx)

	pingTicker := time.NewTicker(r.opts.HeartbeatInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Room stopping", "room.id", r.ID, "reason", ctx.Err())
			return nil

		case err := <-r.readErr:
			if isNormalClose(err) {
				return nil
			}
			slog.WarnContext(ctx, "Player connection error", "player.id", r.Player.ID, "room.id", r.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player connection error")
			return err

		case msg := <-r.incomingMoves:
			r.HandleMessage(ctx, msg)

		case <-pingTicker.C:
			if err := r.write(websocket.PingMessage, nil); err != nil {
				slog.WarnContext(ctx, "Failed to send ping to player, assuming disconnect", "player.id", r.Player.ID, "error", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "Ping failed")
				return err
			}
		}
	}
}

func isNormalClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
		errors.Is(err, context.Canceled)
}
