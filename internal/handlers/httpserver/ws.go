package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/roomsync"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// streamMessage is what every websocket frame carries
type streamMessage struct {
	Type  string            `json:"type"`
	State *models.GameState `json:"state"`
}

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return s.origin == "" || origin == "" || origin == s.origin
		},
	}
}

// handleWS streams the room document. A player token marks the player connected
// for as long as the socket is open; without one the client only watches.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	code := roomCode(r)

	var claims *Claims
	if bearer(r) != "" {
		c, err := s.claimsFor(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Message: err.Error()})
			return
		}
		claims = c
	}

	current, err := s.game.GetRoom(r.Context(), &game.GetRoomInput{RoomCode: code})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	sub, err := s.game.Subscribe(r.Context(), &game.SubscribeInput{RoomCode: code})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	defer sub.Close()

	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Str("room", code).Msg("websocket upgrade failed")
		return
	}

	mirror := roomsync.NewMirror(code)
	snap, err := roomsync.Encode(current.State)
	if err == nil {
		_, err = mirror.Apply(snap)
	}
	if err != nil {
		log.Error().Err(err).Str("room", code).Msg("failed to mirror room")
		conn.Close()
		return
	}

	// The request context ends with the handler, the socket outlives the upgrade
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	if claims != nil {
		s.setConnected(ctx, code, claims.Subject, true)
		defer func() {
			// ctx is already cancelled once the socket has gone away
			leaveCtx, leaveCancel := context.WithTimeout(context.WithoutCancel(r.Context()), writeWait)
			defer leaveCancel()
			s.setConnected(leaveCtx, code, claims.Subject, false)
		}()
	}

	states := make(chan *models.GameState, 8)
	go func() {
		defer cancel()
		mirror.Follow(ctx, sub.Updates(), func(state *models.GameState) {
			select {
			case states <- state:
			case <-ctx.Done():
			}
		})
	}()
	go readPump(conn, cancel)

	writePump(ctx, conn, mirror.State(), states)
}

func (s *Server) setConnected(ctx context.Context, code, playerID string, connected bool) {
	if _, err := s.game.SetConnected(ctx, &game.SetConnectedInput{
		RoomCode:  code,
		PlayerID:  playerID,
		Connected: connected,
	}); err != nil {
		log.Debug().Err(err).Str("room", code).Str("player", playerID).Bool("connected", connected).Msg("presence not updated")
	}
}

// readPump only watches for the client going away
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump owns every write to the socket
func writePump(ctx context.Context, conn *websocket.Conn, initial *models.GameState, states <-chan *models.GameState) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	if err := writeState(conn, initial); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case state := <-states:
			if err := writeState(conn, state); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeState(conn *websocket.Conn, state *models.GameState) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(streamMessage{Type: "state", State: state})
}
