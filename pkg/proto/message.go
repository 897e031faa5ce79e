package proto

import (
	"fmt"

	"ctchen222/tic-tac-toe-web/internal/game"
)

// Client to server message types.
const (
	TypeCell   = "cell"
	TypeReplay = "replay"
	TypeSync   = "sync"
)

// Server to client message types.
const (
	TypeState         = "state"
	TypeCellMarked    = "cell_marked"
	TypeTurnChanged   = "turn_changed"
	TypeStatusChanged = "status_changed"
	TypeShowWinner    = "show_winner"
	TypeReplayVisible = "replay_visible"
	TypeBoardCleared  = "board_cleared"
	TypeError         = "error"
)

// ClientToServerMessage represents a message from the client to the server.
// Index is only read for "cell"; its range is checked by the game session.
type ClientToServerMessage struct {
	Type  string `json:"type" validate:"required,oneof=cell replay sync"`
	Index *int   `json:"index,omitempty" validate:"required_if=Type cell"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type    string            `json:"type" validate:"required"`
	Reason  string            `json:"reason,omitempty"`
	Board   []game.PlayerMark `json:"board,omitempty"`
	Index   *int              `json:"index,omitempty"`
	Mark    game.PlayerMark   `json:"mark,omitempty"`
	Next    game.PlayerMark   `json:"next,omitempty"`
	Status  game.Status       `json:"status,omitempty"`
	Line    []int             `json:"line,omitempty"`
	Visible *bool             `json:"visible,omitempty"`
	Moves   int               `json:"moves,omitempty"`
}

// StateMessage carries a full snapshot so a fresh page can render from scratch.
func StateMessage(state game.State) *ServerToClientMessage {
	msg := &ServerToClientMessage{
		Type:    TypeState,
		Board:   state.Board.Cells(),
		Next:    state.Turn,
		Status:  state.Outcome.Status,
		Visible: boolPtr(state.Outcome.Status.IsOver()),
		Moves:   state.Moves,
	}
	if line, ok := state.Outcome.WinningLine(); ok {
		msg.Line = line[:]
	}
	return msg
}

func CellMarkedMessage(index int, mark game.PlayerMark) *ServerToClientMessage {
	return &ServerToClientMessage{Type: TypeCellMarked, Index: &index, Mark: mark}
}

func TurnChangedMessage(turn game.PlayerMark) *ServerToClientMessage {
	return &ServerToClientMessage{Type: TypeTurnChanged, Next: turn}
}

func StatusChangedMessage(outcome game.Outcome) *ServerToClientMessage {
	msg := &ServerToClientMessage{Type: TypeStatusChanged, Status: outcome.Status}
	if line, ok := outcome.WinningLine(); ok {
		msg.Line = line[:]
	}
	return msg
}

func ReplayVisibleMessage(visible bool) *ServerToClientMessage {
	return &ServerToClientMessage{Type: TypeReplayVisible, Visible: &visible}
}

func BoardClearedMessage() *ServerToClientMessage {
	return &ServerToClientMessage{Type: TypeBoardCleared}
}

func ErrorMessage(reason string) *ServerToClientMessage {
	return &ServerToClientMessage{Type: TypeError, Reason: reason}
}

// HighlightWinCells builds the highlight message for a winning line.
// It fails with game.ErrInvalidWinLine unless line holds exactly three cell indices.
func HighlightWinCells(line []int) (*ServerToClientMessage, error) {
	if err := game.CheckWinLine(line); err != nil {
		return nil, fmt.Errorf("%w: %v", err, line)
	}
	positions := make([]int, len(line))
	copy(positions, line)
	return &ServerToClientMessage{Type: TypeShowWinner, Line: positions}, nil
}

func boolPtr(b bool) *bool {
	return &b
}
