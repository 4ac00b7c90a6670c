package protocol

import (
	"encoding/json"
)

// participant -> session
const (
	MsgPaddleMove = "paddleMove"
	MsgRematch    = "requestRematch"
)

// session -> participant(s)
const (
	MsgSeatAssigned     = "seatAssigned"
	MsgAwaitingOpponent = "awaitingOpponent"
	MsgSessionStarted   = "sessionStarted"
	MsgStateUpdate      = "stateUpdate"
	MsgSessionEnded     = "sessionEnded"
	MsgOpponentLeft     = "opponentLeft"
	MsgNotice           = "notice"
)

const (
	SimTickHz = 60
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"` // raw payload bytes
}
