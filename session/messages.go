package session

import (
	"sync"

	"pong/game"
)

// Conn is the transport seam: a participant's outbound channel. Send must
// not block the session loop; a failed send means the participant is gone.
type Conn interface {
	Send(b []byte) error
	Close() error
}

// Participant ties a connection to its current seat assignment. The
// matchmaker rewrites the routing whenever the participant changes
// sessions, so the gateway always forwards events to the session that
// currently owns it.
type Participant struct {
	ID   string
	Conn Conn

	mu   sync.Mutex
	sess *Session
	seat game.Seat
}

func NewParticipant(id string, c Conn) *Participant {
	return &Participant{ID: id, Conn: c}
}

// Route returns the session and seat this participant currently belongs to.
func (p *Participant) Route() (*Session, game.Seat) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sess, p.seat
}

func (p *Participant) assign(s *Session, seat game.Seat) {
	p.mu.Lock()
	p.sess = s
	p.seat = seat
	p.mu.Unlock()
}

// Commands accepted on a session's inbox.

// Join: issued by the matchmaker when it seats a participant.
type Join struct {
	P    *Participant
	Seat game.Seat
}

// Input: one directional paddle move, applied immediately on receipt.
type Input struct {
	Seat      game.Seat
	Direction game.Direction
}

// RematchRequest: one side of the rematch handshake.
type RematchRequest struct {
	Seat game.Seat
}

// Leave: issued on disconnect.
type Leave struct {
	Seat game.Seat
}
