package game

import (
	"errors"
	"fmt"
)

// State is a point-in-time copy of a session.
type State struct {
	Board   Board
	Turn    PlayerMark
	Outcome Outcome
	Moves   int
}

// Session owns one game: board, turn and outcome. It is driven by a single
// goroutine and is not safe for concurrent use.
type Session struct {
	board   Board
	turn    PlayerMark
	outcome Outcome
	moves   int
	sink    Sink
}

// NewSession creates a session with an empty board and cross to move.
func NewSession(sink Sink) *Session {
	if sink == nil {
		sink = nopSink{}
	}
	return &Session{
		turn:    PlayerX,
		outcome: Outcome{Status: StatusPlaying},
		sink:    sink,
	}
}

// Play places the current turn's mark at index. Rejected moves leave the
// session untouched and emit nothing; see IsIgnorable.
func (s *Session) Play(index int) error {
	if s.outcome.Status.IsOver() {
		return ErrGameOver
	}

	mark := s.turn
	if err := s.board.Place(index, mark); err != nil {
		return err
	}
	s.moves++
	s.turn = NextTurn(mark)
	s.outcome = Evaluate(s.board)

	s.sink.CellMarked(index, mark)
	s.sink.TurnChanged(s.turn)
	s.sink.StatusChanged(s.outcome)

	if !s.outcome.Status.IsOver() {
		return nil
	}
	s.sink.ShowReplay()

	if line, ok := s.outcome.WinningLine(); ok {
		if err := s.sink.ShowWinner(line[:]); err != nil {
			return fmt.Errorf("failed to highlight win line %v: %w", line, err)
		}
	}
	return nil
}

// Reset clears the board and starts a new game with cross to move.
func (s *Session) Reset() {
	s.board = Board{}
	s.turn = PlayerX
	s.outcome = Outcome{Status: StatusPlaying}
	s.moves = 0

	s.sink.BoardCleared()
	s.sink.TurnChanged(s.turn)
	s.sink.StatusChanged(s.outcome)
	s.sink.HideReplay()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return State{
		Board:   s.board,
		Turn:    s.turn,
		Outcome: s.outcome,
		Moves:   s.moves,
	}
}

// Board returns a copy of the board.
func (s *Session) Board() Board { return s.board }

// Turn returns the mark that moves next.
func (s *Session) Turn() PlayerMark { return s.turn }

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// IsIgnorable reports whether err is a rejected move that the UI should drop
// silently: an out-of-range index, a filled cell, or a finished game.
func IsIgnorable(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrGameOver)
}
