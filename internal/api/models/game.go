package models

import "ctchen222/tic-tac-toe-web/internal/game"

// EvaluateRequest defines the structure for a board evaluation request.
// Cell values are checked by game.BoardFromCells.
type EvaluateRequest struct {
	Board []game.PlayerMark `json:"board" binding:"required,len=9"`
}

// EvaluateResponse defines the structure for a board evaluation response.
type EvaluateResponse struct {
	Status game.Status     `json:"status"`
	Winner game.PlayerMark `json:"winner,omitempty"`
	Line   []int           `json:"line,omitempty"`
	Next   game.PlayerMark `json:"next,omitempty"`
}
