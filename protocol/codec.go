package protocol

import (
	"encoding/json"
	"fmt"
)

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode: empty envelope type")
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// DecodePayload unmarshals an envelope's payload into a concrete message
// type.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
