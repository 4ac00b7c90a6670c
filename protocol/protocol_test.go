package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	pairs := map[string]string{
		MsgPaddleMove:       "paddleMove",
		MsgRematch:          "requestRematch",
		MsgSeatAssigned:     "seatAssigned",
		MsgAwaitingOpponent: "awaitingOpponent",
		MsgSessionStarted:   "sessionStarted",
		MsgStateUpdate:      "stateUpdate",
		MsgSessionEnded:     "sessionEnded",
		MsgOpponentLeft:     "opponentLeft",
		MsgNotice:           "notice",
	}
	for got, want := range pairs {
		if got != want {
			t.Fatalf("message constant = %q, want %q", got, want)
		}
	}
}

func TestTickRate(t *testing.T) {
	if SimTickHz != 60 {
		t.Fatalf("SimTickHz = %d, want 60", SimTickHz)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b, err := Encode(MsgPaddleMove, PaddleMove{Direction: "up"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgPaddleMove {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgPaddleMove)
	}

	mv, err := DecodePayload[PaddleMove](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if mv.Direction != "up" {
		t.Fatalf("direction = %q, want %q", mv.Direction, "up")
	}
}

func TestDecodeRejectsEmpty(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty message")
	}
	if _, err := Encode("", struct{}{}); err == nil {
		t.Fatalf("expected error for empty envelope type")
	}
	if _, err := DecodePayload[PaddleMove](Envelope{T: MsgPaddleMove}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
