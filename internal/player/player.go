package player

import "time"

// Connection is an interface that abstracts the websocket connection.
// *websocket.Conn satisfies it.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// PlayerStatus is the connection state of a browser tab.
type PlayerStatus string

const (
	StatusConnected    PlayerStatus = "connected"
	StatusDisconnected PlayerStatus = "disconnected"
)

// Player is one browser tab. Both marks are placed from the same tab.
type Player struct {
	ID          string
	Conn        Connection
	Status      PlayerStatus
	ConnectedAt time.Time
	LastSeen    time.Time
}

// NewPlayer creates a connected player.
func NewPlayer(id string, conn Connection) *Player {
	now := time.Now()
	return &Player{
		ID:          id,
		Conn:        conn,
		Status:      StatusConnected,
		ConnectedAt: now,
		LastSeen:    now,
	}
}

// Touch records activity from the browser.
func (p *Player) Touch() {
	p.LastSeen = time.Now()
}

// Disconnect marks the player as gone.
func (p *Player) Disconnect() {
	p.Status = StatusDisconnected
}
