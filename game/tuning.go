package game

const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0

	PaddleWidth  = 10.0
	PaddleHeight = 100.0
	PaddleOffset = 50.0 // distance from the arena edge to the paddle
	PaddleStep   = 15.0 // pixels per input event

	BallRadius = 10.0
	ServeSpeed = 5.0 // horizontal speed off a fresh serve, px/tick

	BounceFactor     = 0.30 // vertical speed per pixel of offset from paddle center
	MaxVerticalSpeed = 7.0  // cap on |vy| after a paddle hit

	ServeBandLow  = 0.2 // serve vy magnitude band, as fractions of ServeSpeed
	ServeBandHigh = 0.8

	WinningScore = 5
)
