package pong

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLabels(t *testing.T) {
	tests := []struct {
		event Event
		label string
		wire  string
	}{
		{EventNone, "", "null"},
		{EventPaddleCollision, "PADDLE_COLLISION", `"PADDLE_COLLISION"`},
		{EventEdgeCollision, "EDGE_COLLISION", `"EDGE_COLLISION"`},
		{EventPlayerDie, "PLAYER_DIE", `"PLAYER_DIE"`},
	}

	for _, tc := range tests {
		t.Run(tc.event.String(), func(t *testing.T) {
			assert.Equal(t, tc.label, tc.event.Label())

			data, err := json.Marshal(tc.event)
			require.NoError(t, err)
			assert.Equal(t, tc.wire, string(data))

			var back Event = EventPlayerDie
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tc.event, back)
		})
	}
}

func TestParseEventUnknown(t *testing.T) {
	_, err := ParseEvent("GOAL")
	assert.Error(t, err)
}

func TestMarshalStateFieldNames(t *testing.T) {
	s := midField()
	s.LastEvent = EventEdgeCollision

	data, err := MarshalState(s)
	require.NoError(t, err)

	for _, key := range []string{
		`"p1_paddle":300`, `"p2_lives":5`, `"ball_x_speed":6`,
		`"step":10`, `"last_special_event":"EDGE_COLLISION"`,
	} {
		assert.True(t, strings.Contains(string(data), key), "missing %s in %s", key, data)
	}

	back, err := UnmarshalState(data)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestUnmarshalStateRejectsUnknownEvent(t *testing.T) {
	_, err := UnmarshalState([]byte(`{"step":1,"last_special_event":"FOUL"}`))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	s := midField()
	same := s
	other := s
	other.Step++

	assert.Equal(t, s.Fingerprint(), same.Fingerprint())
	assert.NotEqual(t, s.Fingerprint(), other.Fingerprint())
	assert.Len(t, s.FingerprintHex(), 16)

	negative := s
	negative.P1Lives = -1
	assert.NotEqual(t, s.Fingerprint(), negative.Fingerprint())
}

func TestParseTape(t *testing.T) {
	yamlTape, err := ParseTape([]byte("p1: [1, 2, 3]\np2: [-1, -2, -3]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, yamlTape.P1)
	assert.Equal(t, 3, yamlTape.Len())

	jsonTape, err := ParseTape([]byte(`{"p1": [4], "p2": [5, 6]}`))
	require.NoError(t, err)
	assert.Equal(t, -1, jsonTape.Len())

	_, err = jsonTape.Apply(noJitter(), midField())
	assert.ErrorIs(t, err, ErrInputLengthMismatch)

	_, err = ParseTape([]byte("p1: [oops"))
	assert.Error(t, err)
}
