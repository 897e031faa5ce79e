package room

import (
	"ctchen222/tic-tac-toe-web/internal/game"
	"ctchen222/tic-tac-toe-web/pkg/proto"
)

// frameSink turns session updates into outgoing frames. The room flushes
// them once the session call returns.
type frameSink struct {
	frames []*proto.ServerToClientMessage
}

func (s *frameSink) CellMarked(index int, mark game.PlayerMark) {
	s.push(proto.CellMarkedMessage(index, mark))
}

func (s *frameSink) TurnChanged(turn game.PlayerMark) {
	s.push(proto.TurnChangedMessage(turn))
}

func (s *frameSink) StatusChanged(outcome game.Outcome) {
	s.push(proto.StatusChangedMessage(outcome))
}

func (s *frameSink) ShowWinner(line []int) error {
	msg, err := proto.HighlightWinCells(line)
	if err != nil {
		return err
	}
	s.push(msg)
	return nil
}

func (s *frameSink) ShowReplay() {
	s.push(proto.ReplayVisibleMessage(true))
}

func (s *frameSink) HideReplay() {
	s.push(proto.ReplayVisibleMessage(false))
}

func (s *frameSink) BoardCleared() {
	s.push(proto.BoardClearedMessage())
}

func (s *frameSink) push(msg *proto.ServerToClientMessage) {
	s.frames = append(s.frames, msg)
}

func (s *frameSink) drain() []*proto.ServerToClientMessage {
	frames := s.frames
	s.frames = nil
	return frames
}
