package protocol

// Messages coming in from participants. The server only ever accepts a
// direction, never an absolute paddle position.

type PaddleMove struct {
	Direction string `json:"direction"` // "up" or "down"
}

// requestRematch carries no payload.
