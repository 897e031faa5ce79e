package service

import (
	"context"
	"fmt"

	"ctchen222/tic-tac-toe-web/internal/api/models"
	"ctchen222/tic-tac-toe-web/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("api.service")

// GameService defines the interface for stateless game queries.
type GameService interface {
	Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluateResponse, error)
	WinLines(ctx context.Context) []game.Line
}

type gameService struct{}

// NewGameService creates a new GameService.
func NewGameService() GameService {
	return &gameService{}
}

// Evaluate decodes the board and reports its outcome.
func (s *gameService) Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluateResponse, error) {
	_, span := tracer.Start(ctx, "GameService.Evaluate")
	defer span.End()

	board, err := game.BoardFromCells(req.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	outcome := game.Evaluate(board)
	span.SetAttributes(
		attribute.String("game.status", string(outcome.Status)),
		attribute.Int("board.filled", board.Filled()),
	)

	resp := &models.EvaluateResponse{
		Status: outcome.Status,
		Winner: outcome.Status.Winner(),
	}
	if line, ok := outcome.WinningLine(); ok {
		resp.Line = line[:]
	}
	if !outcome.Status.IsOver() {
		resp.Next = nextFromCounts(board)
	}
	return resp, nil
}

// WinLines lists the eight winning lines in evaluation order.
func (s *gameService) WinLines(ctx context.Context) []game.Line {
	lines := game.WinLines()
	return lines[:]
}

// nextFromCounts infers whose turn it is, cross moving first.
func nextFromCounts(b game.Board) game.PlayerMark {
	x, o := 0, 0
	for _, c := range b {
		switch c {
		case game.PlayerX:
			x++
		case game.PlayerO:
			o++
		}
	}
	if x > o {
		return game.PlayerO
	}
	return game.PlayerX
}
