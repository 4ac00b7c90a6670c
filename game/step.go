package game

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Result reports what a tick did beyond plain movement, so the caller can
// broadcast score and game-over events the moment they happen.
type Result struct {
	Scored   Seat // 0 when no point was scored this tick
	GameOver bool
	Winner   Seat
}

// Step advances the simulation by one fixed tick: integrate, paddle
// collisions, wall reflection, scoring, win check. No-op unless playing.
func Step(s *State) Result {
	var res Result
	if s == nil || s.Status != StatusPlaying {
		return res
	}
	s.Tick++

	b := &s.Ball
	b.X += b.VX
	b.Y += b.VY

	collidePaddle(b, s.Paddle(Seat1), Seat1)
	collidePaddle(b, s.Paddle(Seat2), Seat2)

	// wall reflection (top & bottom)
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = -b.VY
	} else if b.Y+b.Radius > s.Height {
		b.Y = s.Height - b.Radius
		b.VY = -b.VY
	}

	// A point scores once the ball is fully past the goal line. The serve
	// heads toward the paddle of whoever just scored; that direction is
	// intentional.
	switch {
	case b.X+b.Radius < 0:
		s.Score[Seat2-1]++
		res.Scored = Seat2
		s.Ball = serve(Seat2)
	case b.X-b.Radius > s.Width:
		s.Score[Seat1-1]++
		res.Scored = Seat1
		s.Ball = serve(Seat1)
	}

	if res.Scored != 0 && s.Score[res.Scored-1] >= WinningScore {
		s.Status = StatusGameOver
		res.GameOver = true
		res.Winner = res.Scored
	}
	return res
}

// collidePaddle reflects the ball off a paddle. The hit only counts while
// the ball is travelling toward that paddle, and the ball is pushed to the
// paddle's outer edge so the same hit cannot trigger again next tick.
func collidePaddle(b *Ball, p *Paddle, seat Seat) {
	toward := b.VX < 0
	if seat == Seat2 {
		toward = b.VX > 0
	}
	if !toward {
		return
	}
	if b.X+b.Radius < p.X || b.X-b.Radius > p.X+p.Width ||
		b.Y+b.Radius < p.Y || b.Y-b.Radius > p.Y+p.Height {
		return
	}

	b.VX = -b.VX
	b.VY = (b.Y - (p.Y + p.Height/2)) * BounceFactor
	if b.VY > MaxVerticalSpeed {
		b.VY = MaxVerticalSpeed
	} else if b.VY < -MaxVerticalSpeed {
		b.VY = -MaxVerticalSpeed
	}

	if seat == Seat1 {
		b.X = p.X + p.Width + b.Radius
	} else {
		b.X = p.X - b.Radius
	}
}

// ApplyMove nudges a seat's paddle one step up or down. Inputs outside of
// play are dropped; the paddle is clamped into the arena on every mutation.
func ApplyMove(s *State, seat Seat, dir Direction) {
	if s == nil || s.Status != StatusPlaying {
		return
	}
	p := s.Paddle(seat)
	switch dir {
	case Up:
		p.Y -= PaddleStep
	case Down:
		p.Y += PaddleStep
	default:
		return
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > s.Height-p.Height {
		p.Y = s.Height - p.Height
	}
}
