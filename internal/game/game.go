package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Status is the phase of a game.
type Status string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game statuses
	StatusPlaying    Status = "playing"
	StatusCrossWins  Status = "cross_wins"
	StatusCircleWins Status = "circle_wins"
	StatusDraw       Status = "draw"

	// Board boundaries
	BoardSize = 9
	BorderMin = 0
	BorderMax = BoardSize - 1
)

var (
	ErrOutOfRange     = errors.New("cell index out of range")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrInvalidMark    = errors.New("invalid player mark")
	ErrBoardSize      = errors.New("board must have exactly 9 cells")
	ErrGameOver       = errors.New("game already finished")
	ErrInvalidWinLine = errors.New("invalid win line")
)

// Line is an index triple on the board.
type Line [3]int

// winLines is ordered rows, columns, diagonals. Evaluate relies on that order.
var winLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinLines returns a copy of the eight winning lines.
func WinLines() [8]Line {
	return winLines
}

// Board is a row-major 3x3 grid.
type Board [BoardSize]PlayerMark

// BoardFromCells converts a dynamic slice of marks into a Board.
func BoardFromCells(cells []PlayerMark) (Board, error) {
	var b Board
	if len(cells) != BoardSize {
		return b, fmt.Errorf("%w: got %d", ErrBoardSize, len(cells))
	}
	for i, c := range cells {
		if c != None && !c.IsPlayer() {
			return b, fmt.Errorf("%w: %q at cell %d", ErrInvalidMark, c, i)
		}
		b[i] = c
	}
	return b, nil
}

// Cells converts the board to a dynamic slice, the shape the wire format uses.
func (b Board) Cells() []PlayerMark {
	cells := make([]PlayerMark, BoardSize)
	copy(cells, b[:])
	return cells
}

// Place marks an empty cell.
func (b *Board) Place(index int, mark PlayerMark) error {
	if index < BorderMin || index > BorderMax {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
	if b[index] != None {
		return fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}
	b[index] = mark
	return nil
}

// Filled counts the non-empty cells.
func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c != None {
			n++
		}
	}
	return n
}

// IsFull checks if every cell holds a mark.
func (b Board) IsFull() bool {
	return b.Filled() == BoardSize
}

// IsPlayer reports whether m is X or O.
func (m PlayerMark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// NextTurn returns the mark that moves after m.
func NextTurn(m PlayerMark) PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsOver reports whether the status is terminal.
func (s Status) IsOver() bool {
	return s != StatusPlaying
}

// IsWin reports whether the status names a winner.
func (s Status) IsWin() bool {
	return s == StatusCrossWins || s == StatusCircleWins
}

// Winner returns the winning mark, or None for playing and draw.
func (s Status) Winner() PlayerMark {
	switch s {
	case StatusCrossWins:
		return PlayerX
	case StatusCircleWins:
		return PlayerO
	default:
		return None
	}
}

func winStatus(m PlayerMark) Status {
	if m == PlayerX {
		return StatusCrossWins
	}
	return StatusCircleWins
}

// Outcome is the result of evaluating a board.
type Outcome struct {
	Status Status
	Line   Line
}

// WinningLine returns the completed line for a win.
func (o Outcome) WinningLine() (Line, bool) {
	if !o.Status.IsWin() {
		return Line{}, false
	}
	return o.Line, true
}

// Evaluate maps a board to its outcome. The first completed line in
// rows, columns, diagonals order wins.
func Evaluate(b Board) Outcome {
	for _, line := range winLines {
		a := b[line[0]]
		if a != None && a == b[line[1]] && a == b[line[2]] {
			return Outcome{Status: winStatus(a), Line: line}
		}
	}

	if b.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusPlaying}
}
