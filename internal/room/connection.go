package room

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ctchen222/tic-tac-toe-web/pkg/proto"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ReadPump pumps messages from the websocket connection to the room's incomingMoves channel.
// The first read error is handed to Run through readErr.
func (r *Room) ReadPump(ctx context.Context) {
	conn := r.Player.Conn
	conn.SetReadLimit(r.opts.ReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(r.opts.PongWait))
	conn.SetPongHandler(func(string) error {
		r.Player.Touch()
		return conn.SetReadDeadline(time.Now().Add(r.opts.PongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			r.readErr <- err
			return
		}
		r.Player.Touch()

		select {
		case r.incomingMoves <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// send writes one message to the player.
func (r *Room) send(ctx context.Context, message *proto.ServerToClientMessage) {
	_, span := tracer.Start(ctx, "room.send", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("message.type", message.Type),
	))
	defer span.End()

	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling message")
		return
	}

	if err := r.write(websocket.TextMessage, data); err != nil {
		slog.ErrorContext(ctx, "error writing message to player", "player.id", r.Player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error writing message to player")
	}
}

// flush sends every frame the session produced since the last flush.
func (r *Room) flush(ctx context.Context) {
	for _, msg := range r.sink.drain() {
		r.send(ctx, msg)
	}
}

func (r *Room) write(messageType int, data []byte) error {
	if err := r.Player.Conn.SetWriteDeadline(time.Now().Add(r.opts.WriteWait)); err != nil {
		return err
	}
	return r.Player.Conn.WriteMessage(messageType, data)
}
