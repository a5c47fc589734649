package pong

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tape is a recorded sequence of paddle deltas for both players.
// Index i of P1 and P2 belongs to the same tick.
type Tape struct {
	P1 []int `yaml:"p1" json:"p1"`
	P2 []int `yaml:"p2" json:"p2"`
}

// Len returns the number of ticks on the tape, or -1 if the sides disagree.
func (t Tape) Len() int {
	if len(t.P1) != len(t.P2) {
		return -1
	}
	return len(t.P1)
}

// Apply replays the tape starting from s.
func (t Tape) Apply(r Rand, s State) (State, error) {
	return Replay(r, s, t.P1, t.P2)
}

// ParseTape decodes a tape from YAML. JSON input is accepted as well.
func ParseTape(data []byte) (Tape, error) {
	var t Tape
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tape{}, fmt.Errorf("pong: cannot parse tape: %w", err)
	}
	return t, nil
}

// LoadTape reads and parses a tape file.
func LoadTape(path string) (Tape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tape{}, fmt.Errorf("pong: failed to read tape %s: %w", path, err)
	}
	return ParseTape(data)
}
