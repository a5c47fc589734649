package pong

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Wire labels for events, as consumed by hosts.
const (
	labelPaddleCollision = "PADDLE_COLLISION"
	labelEdgeCollision   = "EDGE_COLLISION"
	labelPlayerDie       = "PLAYER_DIE"
)

// Label returns the wire label for the event, or "" for EventNone.
func (e Event) Label() string {
	switch e {
	case EventPaddleCollision:
		return labelPaddleCollision
	case EventEdgeCollision:
		return labelEdgeCollision
	case EventPlayerDie:
		return labelPlayerDie
	default:
		return ""
	}
}

// ParseEvent converts a wire label back to an Event. "" maps to EventNone.
func ParseEvent(label string) (Event, error) {
	switch label {
	case "":
		return EventNone, nil
	case labelPaddleCollision:
		return EventPaddleCollision, nil
	case labelEdgeCollision:
		return EventEdgeCollision, nil
	case labelPlayerDie:
		return EventPlayerDie, nil
	default:
		return EventNone, fmt.Errorf("pong: unknown event %q", label)
	}
}

// MarshalJSON encodes the event as its label, or null for EventNone.
func (e Event) MarshalJSON() ([]byte, error) {
	if e == EventNone {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(e.Label())), nil
}

// UnmarshalJSON decodes a label or null.
func (e *Event) UnmarshalJSON(data []byte) error {
	var label *string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("pong: cannot decode event: %w", err)
	}
	if label == nil {
		*e = EventNone
		return nil
	}
	ev, err := ParseEvent(*label)
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// Snapshot is the serialized form of a State.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	P1Paddle         int   `json:"p1_paddle"`
	P2Paddle         int   `json:"p2_paddle"`
	P1Lives          int   `json:"p1_lives"`
	P2Lives          int   `json:"p2_lives"`
	BallXSpeed       int   `json:"ball_x_speed"`
	BallYSpeed       int   `json:"ball_y_speed"`
	BallX            int   `json:"ball_x"`
	BallY            int   `json:"ball_y"`
	Step             int   `json:"step"`
	LastSpecialEvent Event `json:"last_special_event"`
}

// Snapshot returns the serializable form of s.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		P1Paddle:         s.P1Paddle,
		P2Paddle:         s.P2Paddle,
		P1Lives:          s.P1Lives,
		P2Lives:          s.P2Lives,
		BallXSpeed:       s.BallXSpeed,
		BallYSpeed:       s.BallYSpeed,
		BallX:            s.BallX,
		BallY:            s.BallY,
		Step:             s.Step,
		LastSpecialEvent: s.LastEvent,
	}
}

// State converts a snapshot back to a State.
func (snap Snapshot) State() State {
	return State{
		P1Paddle:   snap.P1Paddle,
		P2Paddle:   snap.P2Paddle,
		P1Lives:    snap.P1Lives,
		P2Lives:    snap.P2Lives,
		BallXSpeed: snap.BallXSpeed,
		BallYSpeed: snap.BallYSpeed,
		BallX:      snap.BallX,
		BallY:      snap.BallY,
		Step:       snap.Step,
		LastEvent:  snap.LastSpecialEvent,
	}
}

// MarshalState encodes s as JSON.
func MarshalState(s State) ([]byte, error) {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("pong: cannot encode state: %w", err)
	}
	return data, nil
}

// UnmarshalState decodes a JSON-encoded state.
func UnmarshalState(data []byte) (State, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return State{}, fmt.Errorf("pong: cannot decode state: %w", err)
	}
	return snap.State(), nil
}

// Fingerprint returns a stable 64-bit hash of every field of s.
// Two states are equal exactly when their fingerprints match, modulo collisions.
func (s State) Fingerprint() uint64 {
	fields := [...]int{
		s.P1Paddle, s.P2Paddle,
		s.P1Lives, s.P2Lives,
		s.BallXSpeed, s.BallYSpeed,
		s.BallX, s.BallY,
		s.Step, int(s.LastEvent),
	}

	buf := make([]byte, 0, len(fields)*8)
	for _, f := range fields {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(f)))
	}
	return xxhash.Sum64(buf)
}

// FingerprintHex returns the fingerprint formatted as 16 hex digits.
func (s State) FingerprintHex() string {
	return fmt.Sprintf("%016x", s.Fingerprint())
}
