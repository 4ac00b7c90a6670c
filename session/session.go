package session

import (
	"log"
	"time"

	"pong/game"
	"pong/protocol"
)

// Session owns one pairing of two participants and the only valid
// simulation of their match. All mutation happens on the Run goroutine;
// commands arrive through Inbox, so ticks, inputs, joins and leaves never
// interleave partially.
type Session struct {
	ID    string
	Inbox chan any

	seats  map[game.Seat]*Participant
	state  *game.State         // nil until both seats fill
	votes  map[string]struct{} // participant ids that asked for a rematch
	ticker *time.Ticker        // tick driver; nil outside of play
	tickC  <-chan time.Time
	quit   chan struct{}

	mm *Matchmaker
}

func newSession(id string, mm *Matchmaker) *Session {
	return &Session{
		ID:    id,
		Inbox: make(chan any, 64),
		seats: make(map[game.Seat]*Participant),
		votes: make(map[string]struct{}),
		quit:  make(chan struct{}),
		mm:    mm,
	}
}

func (s *Session) Stop() {
	close(s.quit)
}

// Enqueue delivers a command unless the session has stopped. It blocks
// rather than drops when the inbox is briefly full, so a Leave can never
// be lost.
func (s *Session) Enqueue(cmd any) {
	select {
	case s.Inbox <- cmd:
	case <-s.quit:
	}
}

func (s *Session) Run() {
	defer s.stopTicker()
	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			s.handleCommand(cmd)
		case <-s.tickC:
			s.step()
		}
	}
}

func (s *Session) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		s.handleJoin(c.P, c.Seat)
	case Input:
		if _, ok := s.seats[c.Seat]; ok {
			game.ApplyMove(s.state, c.Seat, c.Direction)
		}
	case RematchRequest:
		s.handleRematch(c.Seat)
	case Leave:
		s.handleLeave(c.Seat, "opponent disconnected")
	}
}

func (s *Session) handleJoin(p *Participant, seat game.Seat) {
	s.seats[seat] = p

	err := s.send(p, protocol.MsgSeatAssigned, protocol.SeatAssigned{
		Seat:      int(seat),
		SessionID: s.ID,
		Arena:     protocol.Arena{Width: game.ArenaWidth, Height: game.ArenaHeight},
	})
	if err != nil {
		s.handleLeave(seat, "connection lost")
		return
	}

	if len(s.seats) < 2 {
		_ = s.send(p, protocol.MsgAwaitingOpponent, protocol.AwaitingOpponent{})
		return
	}
	s.start()
}

// start (re)enters play: a fresh state, a fresh tick driver and the initial
// snapshot to both seats. The state is rebuilt wholesale so no velocity or
// score survives a restart, and any previous driver is stopped first so the
// session never runs two.
func (s *Session) start() {
	s.stopTicker()
	s.state = game.New()
	s.votes = make(map[string]struct{})
	s.ticker = time.NewTicker(time.Second / time.Duration(protocol.SimTickHz))
	s.tickC = s.ticker.C
	s.broadcast(protocol.MsgSessionStarted, protocol.SessionStarted{State: snapshot(s.state)})
}

func (s *Session) stopTicker() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	s.tickC = nil
}

func (s *Session) step() {
	res := game.Step(s.state)
	if res.GameOver {
		s.stopTicker()
		s.broadcast(protocol.MsgStateUpdate, protocol.StateUpdate{State: snapshot(s.state)})
		s.broadcast(protocol.MsgSessionEnded, protocol.SessionEnded{
			Winner: int(res.Winner),
			Score:  protocol.Score{P1: s.state.Score[0], P2: s.state.Score[1]},
		})
		return
	}
	// The snapshot goes out every tick; on a score tick it carries the
	// reset ball and the new score the instant they happen.
	s.broadcast(protocol.MsgStateUpdate, protocol.StateUpdate{State: snapshot(s.state)})
}

func (s *Session) handleRematch(seat game.Seat) {
	p, ok := s.seats[seat]
	if !ok {
		return
	}
	if s.state == nil || s.state.Status != game.StatusGameOver {
		_ = s.send(p, protocol.MsgNotice, protocol.Notice{Text: "no finished game to rematch"})
		return
	}
	s.votes[p.ID] = struct{}{}
	if len(s.seats) == 2 && s.bothVoted() {
		s.start()
		return
	}
	_ = s.send(p, protocol.MsgNotice, protocol.Notice{Text: "rematch requested, waiting for opponent"})
}

func (s *Session) bothVoted() bool {
	for _, p := range s.seats {
		if _, ok := s.votes[p.ID]; !ok {
			return false
		}
	}
	return true
}

// handleLeave ends whatever game was running: the tick driver stops and
// the state is discarded. A seated survivor is told and goes back through
// matchmaking with this session released; otherwise the matchmaker decides
// whether the session dies or stays open for a join still in flight.
func (s *Session) handleLeave(seat game.Seat, reason string) {
	p, ok := s.seats[seat]
	if !ok {
		return
	}
	delete(s.seats, seat)
	delete(s.votes, p.ID)
	_ = p.Conn.Close()

	s.stopTicker()
	s.state = nil

	var survivor *Participant
	for st, q := range s.seats {
		survivor = q
		delete(s.seats, st)
	}

	if survivor != nil {
		_ = s.send(survivor, protocol.MsgOpponentLeft, protocol.OpponentLeft{Reason: reason})
		s.mm.Release(s.ID)
		s.mm.Admit(survivor)
		return
	}
	s.mm.Vacate(s.ID, seat)
}

func (s *Session) send(p *Participant, t string, payload any) error {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("session %s: encode %s: %v", s.ID, t, err)
		return err
	}
	return p.Conn.Send(b)
}

func (s *Session) broadcast(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("session %s: encode %s: %v", s.ID, t, err)
		return
	}

	var failed []game.Seat
	for seat, p := range s.seats {
		if err := p.Conn.Send(b); err != nil {
			failed = append(failed, seat)
		}
	}
	for _, seat := range failed {
		s.handleLeave(seat, "connection lost")
	}
}

func snapshot(st *game.State) protocol.GameSnapshot {
	snap := protocol.GameSnapshot{
		Tick:   st.Tick,
		Status: string(st.Status),
		Arena:  protocol.Arena{Width: st.Width, Height: st.Height},
		Ball: protocol.BallSnapshot{
			X:      st.Ball.X,
			Y:      st.Ball.Y,
			VX:     st.Ball.VX,
			VY:     st.Ball.VY,
			Radius: st.Ball.Radius,
		},
		Score: protocol.Score{P1: st.Score[0], P2: st.Score[1]},
	}
	for i := range st.Paddles {
		p := st.Paddles[i]
		snap.Paddles = append(snap.Paddles, protocol.PaddleSnapshot{
			Seat:   i + 1,
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
		})
	}
	return snap
}
