package session

import (
	"sync"

	"github.com/google/uuid"

	"pong/game"
)

// SessionInfo is returned by the HTTP API for the session list.
type SessionInfo struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
}

// Matchmaker is the process-wide registry of sessions. It is the single
// authority on seat occupancy: admits, vacancies and destruction all run
// under one mutex, so a session can never be torn down while a seat it
// handed out is still inbound, and two participants can never claim the
// same open seat.
type Matchmaker struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	counts   map[string]int // admitted participants per session, joins in flight included
	open     *Session       // session with a free seat, or nil
	openSeat game.Seat      // the seat the next admit to open gets
}

func NewMatchmaker() *Matchmaker {
	return &Matchmaker{
		sessions: make(map[string]*Session),
		counts:   make(map[string]int),
	}
}

// Admit places a participant into the session with a free seat, creating a
// fresh session when none is open. The participant's routing is updated
// before the session sees the join, so the gateway can forward input right
// away.
func (m *Matchmaker) Admit(p *Participant) (*Session, game.Seat) {
	m.mu.Lock()
	s, seat := m.open, m.openSeat
	if s != nil {
		m.open = nil
	} else {
		s = newSession(newSessionID(), m)
		seat = game.Seat1
		m.sessions[s.ID] = s
		m.open, m.openSeat = s, game.Seat2
		go s.Run()
	}
	m.counts[s.ID]++
	p.assign(s, seat)
	m.mu.Unlock()

	// The send happens outside the critical section so a slow inbox can
	// never wedge the registry; the count taken above keeps the session
	// alive until this join is processed.
	s.Enqueue(Join{P: p, Seat: seat})
	return s, seat
}

// Vacate records that a seat emptied. With nobody left the session is
// destroyed; with another admitted participant still seated (or inbound)
// the session returns to the open pool offering the freed seat.
func (m *Matchmaker) Vacate(id string, freed game.Seat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return
	}
	m.counts[id]--
	if m.counts[id] <= 0 {
		m.destroyLocked(s)
		return
	}
	m.open, m.openSeat = s, freed
}

// Release destroys a session outright. Callers use it when every admitted
// participant is accounted for, so no join can still be in flight.
func (m *Matchmaker) Release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		m.destroyLocked(s)
	}
}

func (m *Matchmaker) destroyLocked(s *Session) {
	if m.open == s {
		m.open = nil
	}
	delete(m.sessions, s.ID)
	delete(m.counts, s.ID)
	s.Stop()
}

// Sessions returns all live sessions with their admitted player counts.
func (m *Matchmaker) Sessions() []SessionInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SessionInfo, 0, len(m.sessions))
	for id := range m.sessions {
		out = append(out, SessionInfo{ID: id, Players: m.counts[id]})
	}
	return out
}

func newSessionID() string {
	return uuid.NewString()[:8]
}
