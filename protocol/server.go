package protocol

// Messages going out to participants. State is always the full snapshot,
// sent whole each tick; at this size and tick rate deltas aren't worth it.

type Arena struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SeatAssigned struct {
	Seat      int    `json:"seat"` // 1 or 2
	SessionID string `json:"sessionId"`
	Arena     Arena  `json:"arena"`
}

type AwaitingOpponent struct{}

type SessionStarted struct {
	State GameSnapshot `json:"state"`
}

type StateUpdate struct {
	State GameSnapshot `json:"state"`
}

type SessionEnded struct {
	Winner int   `json:"winner"` // winning seat
	Score  Score `json:"score"`
}

type OpponentLeft struct {
	Reason string `json:"reason"`
}

type Notice struct {
	Text string `json:"text"`
}

type Score struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

type GameSnapshot struct {
	Tick    int              `json:"tick"`
	Status  string           `json:"status"`
	Arena   Arena            `json:"arena"`
	Ball    BallSnapshot     `json:"ball"`
	Paddles []PaddleSnapshot `json:"paddles"`
	Score   Score            `json:"score"`
}

type BallSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

type PaddleSnapshot struct {
	Seat   int     `json:"seat"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
