package network

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pong/game"
	"pong/protocol"
	"pong/session"
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades participant connections and bridges them to the
// matchmaker: inbound envelopes become session commands, read errors become
// Leave. Malformed messages are logged and dropped here; they never reach a
// session.
type Handler struct {
	mm *session.Matchmaker
}

func NewHandler(mm *session.Matchmaker) *Handler {
	return &Handler{mm: mm}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	conn := newWSConn(ws)
	go conn.writeLoop()

	p := session.NewParticipant(uuid.NewString(), conn)
	h.mm.Admit(p)

	h.readLoop(p, ws)
}

func (h *Handler) readLoop(p *session.Participant, ws *websocket.Conn) {
	defer func() {
		if s, seat := p.Route(); s != nil {
			s.Enqueue(session.Leave{Seat: seat})
		}
		_ = p.Conn.Close()
	}()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			return
		}

		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Printf("participant %s: bad envelope: %v", p.ID, err)
			continue
		}

		s, seat := p.Route()
		if s == nil {
			continue
		}

		switch env.T {
		case protocol.MsgPaddleMove:
			mv, err := protocol.DecodePayload[protocol.PaddleMove](env)
			if err != nil {
				log.Printf("participant %s: bad paddleMove: %v", p.ID, err)
				continue
			}
			dir, ok := parseDirection(mv.Direction)
			if !ok {
				continue
			}
			s.Enqueue(session.Input{Seat: seat, Direction: dir})
		case protocol.MsgRematch:
			s.Enqueue(session.RematchRequest{Seat: seat})
		default:
			log.Printf("participant %s: unknown message %q", p.ID, env.T)
		}
	}
}

func parseDirection(d string) (game.Direction, bool) {
	switch d {
	case "up":
		return game.Up, true
	case "down":
		return game.Down, true
	}
	return "", false
}
