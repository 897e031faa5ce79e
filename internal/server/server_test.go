package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ctchen222/tic-tac-toe-web/internal/api/controller"
	"ctchen222/tic-tac-toe-web/internal/api/service"
	"ctchen222/tic-tac-toe-web/internal/game"
	"ctchen222/tic-tac-toe-web/internal/room"
	"ctchen222/tic-tac-toe-web/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Extras  json.RawMessage `json:"extras"`
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if opts.Room == (room.Options{}) {
		opts.Room = room.DefaultOptions()
	}
	return NewServer(ctx, controller.NewGameController(service.NewGameService()), opts)
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, Options{})

	w, env := doJSON(t, s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantStatus game.Status
		wantLine   []int
		wantNext   game.PlayerMark
	}{
		{
			name:       "Cross wins on the first row",
			body:       `{"board":["X","X","X","O","O","","","",""]}`,
			wantCode:   http.StatusOK,
			wantStatus: game.StatusCrossWins,
			wantLine:   []int{0, 1, 2},
		},
		{
			name:       "Full board is a draw",
			body:       `{"board":["X","O","X","O","X","O","O","X","O"]}`,
			wantCode:   http.StatusOK,
			wantStatus: game.StatusDraw,
		},
		{
			name:       "Empty board is playing",
			body:       `{"board":["","","","","","","","",""]}`,
			wantCode:   http.StatusOK,
			wantStatus: game.StatusPlaying,
			wantNext:   game.PlayerX,
		},
		{
			name:     "Wrong length",
			body:     `{"board":["X","O"]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Unknown mark",
			body:     `{"board":["X","","","","Q","","","",""]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Missing board",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
	}

	s := newTestServer(t, Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, s, http.MethodPost, "/api/evaluate", tt.body)

			require.Equal(t, tt.wantCode, w.Code, "body: %s", w.Body.String())
			if tt.wantCode != http.StatusOK {
				assert.False(t, env.Success)
				return
			}

			var got struct {
				Status game.Status     `json:"status"`
				Line   []int           `json:"line"`
				Next   game.PlayerMark `json:"next"`
			}
			require.NoError(t, json.Unmarshal(env.Extras, &got))
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantLine, got.Line)
			assert.Equal(t, tt.wantNext, got.Next)
		})
	}
}

func TestWinLines(t *testing.T) {
	s := newTestServer(t, Options{})

	w, env := doJSON(t, s, http.MethodGet, "/api/win-lines", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		List [][3]int `json:"list"`
	}
	require.NoError(t, json.Unmarshal(env.Extras, &got))
	require.Len(t, got.List, 8)
	assert.Equal(t, [3]int{0, 1, 2}, got.List[0])
	assert.Equal(t, [3]int{2, 4, 6}, got.List[7])
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t, Options{})

	w, env := doJSON(t, s, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestStaticIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<ul id=\"board\"></ul>"), 0o600))
	s := newTestServer(t, Options{StaticDir: dir})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="board"`)
}

func TestCheckOrigin(t *testing.T) {
	s := newTestServer(t, Options{AllowedOrigins: []string{"https://play.example.com"}})

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "No origin header", origin: "", want: true},
		{name: "Same host", origin: "http://example.com", want: true},
		{name: "Listed origin", origin: "https://play.example.com", want: true},
		{name: "Foreign origin", origin: "https://evil.example.net", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, s.checkOrigin(req))
		})
	}
}

func TestWebSocketGame(t *testing.T) {
	s := newTestServer(t, Options{})
	srv := httptest.NewServer(s.Engine())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() proto.ServerToClientMessage {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg proto.ServerToClientMessage
		require.NoError(t, conn.ReadJSON(&msg))
		return msg
	}
	play := func(index int) {
		t.Helper()
		require.NoError(t, conn.WriteJSON(proto.ClientToServerMessage{Type: proto.TypeCell, Index: &index}))
	}

	initial := read()
	assert.Equal(t, proto.TypeState, initial.Type)
	assert.Equal(t, game.StatusPlaying, initial.Status)

	// X: 0, 1, 2 - O: 3, 4
	for _, idx := range []int{0, 3, 1, 4} {
		play(idx)
		for range 3 {
			read()
		}
	}
	// A second click on a filled cell is dropped; the sync reply proves nothing was sent for it.
	play(0)
	require.NoError(t, conn.WriteJSON(proto.ClientToServerMessage{Type: proto.TypeSync}))
	state := read()
	assert.Equal(t, proto.TypeState, state.Type)
	assert.Equal(t, 4, state.Moves)

	play(2)
	assert.Equal(t, proto.TypeCellMarked, read().Type)
	assert.Equal(t, proto.TypeTurnChanged, read().Type)
	status := read()
	assert.Equal(t, game.StatusCrossWins, status.Status)
	assert.Equal(t, []int{0, 1, 2}, status.Line)
	assert.Equal(t, proto.TypeReplayVisible, read().Type)
	winner := read()
	assert.Equal(t, proto.TypeShowWinner, winner.Type)
	assert.Equal(t, []int{0, 1, 2}, winner.Line)

	require.NoError(t, conn.WriteJSON(proto.ClientToServerMessage{Type: proto.TypeReplay}))
	assert.Equal(t, proto.TypeBoardCleared, read().Type)
	assert.Equal(t, game.PlayerX, read().Next)
	assert.Equal(t, game.StatusPlaying, read().Status)
	assert.Equal(t, proto.TypeReplayVisible, read().Type)
}

func TestWebSocketSessionsAreIsolated(t *testing.T) {
	s := newTestServer(t, Options{})
	srv := httptest.NewServer(s.Engine())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	first, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer first.Close()
	second, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer second.Close()

	var msg proto.ServerToClientMessage
	require.NoError(t, first.ReadJSON(&msg))
	require.NoError(t, second.ReadJSON(&msg))

	index := 4
	require.NoError(t, first.WriteJSON(proto.ClientToServerMessage{Type: proto.TypeCell, Index: &index}))
	for range 3 {
		require.NoError(t, first.ReadJSON(&msg))
	}

	require.NoError(t, second.WriteJSON(proto.ClientToServerMessage{Type: proto.TypeSync}))
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	var state proto.ServerToClientMessage
	require.NoError(t, second.ReadJSON(&state))
	assert.Equal(t, proto.TypeState, state.Type)
	assert.Zero(t, state.Moves)
	require.Len(t, state.Board, game.BoardSize)
	assert.Equal(t, game.None, state.Board[4])
}
