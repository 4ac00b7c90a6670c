package game

import "math/rand"

// Internal truth: the authoritative state of one match. Nothing in this
// package does I/O; the session layer owns snapshots and broadcast.

type Seat uint8

const (
	Seat1 Seat = 1
	Seat2 Seat = 2
)

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == Seat1 {
		return Seat2
	}
	return Seat1
}

type Status string

const (
	StatusWaiting  Status = "waiting" // transient, never simulated
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "gameover"
)

type Paddle struct {
	X, Y          float64
	Width, Height float64
}

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

type State struct {
	Tick    int
	Width   float64
	Height  float64
	Paddles [2]Paddle // indexed by seat-1
	Ball    Ball
	Score   [2]int // indexed by seat-1
	Status  Status
}

// New builds a fresh match: paddles centered on their fixed columns, ball
// served from the arena center toward a random seat.
func New() *State {
	s := &State{
		Width:  ArenaWidth,
		Height: ArenaHeight,
		Status: StatusPlaying,
	}
	py := (ArenaHeight - PaddleHeight) / 2
	s.Paddles[0] = Paddle{X: PaddleOffset, Y: py, Width: PaddleWidth, Height: PaddleHeight}
	s.Paddles[1] = Paddle{X: ArenaWidth - PaddleOffset - PaddleWidth, Y: py, Width: PaddleWidth, Height: PaddleHeight}

	toward := Seat1
	if rand.Intn(2) == 0 {
		toward = Seat2
	}
	s.Ball = serve(toward)
	return s
}

// Paddle returns the paddle owned by a seat.
func (s *State) Paddle(seat Seat) *Paddle {
	return &s.Paddles[seat-1]
}

// serve places the ball at the arena center heading toward the given
// seat's paddle, with a mildly randomized vertical component.
func serve(toward Seat) Ball {
	vx := float64(ServeSpeed)
	if toward == Seat1 {
		vx = -vx
	}
	vy := (ServeBandLow + rand.Float64()*(ServeBandHigh-ServeBandLow)) * ServeSpeed
	if rand.Intn(2) == 0 {
		vy = -vy
	}
	return Ball{
		X:      ArenaWidth / 2,
		Y:      ArenaHeight / 2,
		VX:     vx,
		VY:     vy,
		Radius: BallRadius,
	}
}
