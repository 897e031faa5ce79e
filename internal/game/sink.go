package game

//go:generate mockgen -source=sink.go -destination=mock_sink_test.go -package=game

// Sink receives presentation updates from a Session. Implementations never
// feed state back into the session.
type Sink interface {
	CellMarked(index int, mark PlayerMark)
	TurnChanged(turn PlayerMark)
	StatusChanged(outcome Outcome)
	// ShowWinner must return ErrInvalidWinLine unless line has exactly three indices.
	ShowWinner(line []int) error
	ShowReplay()
	HideReplay()
	BoardCleared()
}

type nopSink struct{}

func (nopSink) CellMarked(int, PlayerMark) {}
func (nopSink) TurnChanged(PlayerMark)     {}
func (nopSink) StatusChanged(Outcome)      {}
func (nopSink) ShowReplay()                {}
func (nopSink) HideReplay()                {}
func (nopSink) BoardCleared()              {}

func (nopSink) ShowWinner(line []int) error {
	return CheckWinLine(line)
}

// CheckWinLine validates a highlight request.
func CheckWinLine(line []int) error {
	if len(line) != len(Line{}) {
		return ErrInvalidWinLine
	}
	for _, idx := range line {
		if idx < BorderMin || idx > BorderMax {
			return ErrInvalidWinLine
		}
	}
	return nil
}
