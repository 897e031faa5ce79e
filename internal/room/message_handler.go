package room

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"ctchen222/tic-tac-toe-web/internal/game"
	"ctchen222/tic-tac-toe-web/internal/validator"
	"ctchen222/tic-tac-toe-web/pkg/proto"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from the player. It acts as a dispatcher.
func (r *Room) HandleMessage(ctx context.Context, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "room.HandleMessage", trace.WithAttributes(
		attribute.String("player.id", r.Player.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		r.send(ctx, proto.ErrorMessage("malformed message"))
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "player.id", r.Player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		r.send(ctx, proto.ErrorMessage(validator.Describe(err)))
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeCell:
		r.handleCell(ctx, *message.Index)
	case proto.TypeReplay:
		r.handleReplay(ctx)
	case proto.TypeSync:
		r.send(ctx, proto.StateMessage(r.session.Snapshot()))
	}
}

// handleCell processes a cell click.
func (r *Room) handleCell(ctx context.Context, index int) {
	ctx, moveSpan := tracer.Start(ctx, "room.handleCell", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("move.index", index),
		attribute.String("move.mark", string(r.session.Turn())),
	))
	defer moveSpan.End()

	m := getMetrics()
	err := r.session.Play(index)
	switch {
	case err == nil:
		moveSpan.SetAttributes(attribute.Bool("move.valid", true))
		m.moveAccepted(ctx)
		if outcome := r.session.Outcome(); outcome.Status.IsOver() {
			slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "status", outcome.Status)
			m.gameFinished(ctx, outcome.Status)
		}

	case game.IsIgnorable(err):
		// Clicks on filled cells or after the game ended are dropped without a reply.
		slog.DebugContext(ctx, "ignoring move", "room.id", r.ID, "index", index, "reason", err)
		moveSpan.SetAttributes(attribute.Bool("move.valid", false))
		m.moveIgnored(ctx, ignoreReason(err))
		return

	default:
		slog.ErrorContext(ctx, "failed to apply move", "room.id", r.ID, "index", index, "error", err)
		moveSpan.RecordError(err)
		moveSpan.SetStatus(codes.Error, "Failed to apply move")
	}

	r.flush(ctx)
}

// handleReplay resets the game on the player's request.
func (r *Room) handleReplay(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "room.handleReplay", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("game.status", string(r.session.Outcome().Status)),
	))
	defer span.End()

	slog.InfoContext(ctx, "Player requested replay", "player.id", r.Player.ID, "room.id", r.ID)
	r.session.Reset()
	r.flush(ctx)
}

func ignoreReason(err error) string {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, game.ErrOutOfRange):
		return "out_of_range"
	default:
		return "unknown"
	}
}
