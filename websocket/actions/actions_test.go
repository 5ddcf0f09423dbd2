package actions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/websocket/message"
)

func statePayload(t *testing.T, payload message.StatePayload) message.Message {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return message.Message{Type: "STATE", Payload: data}
}

func TestHandleStateUpdate(t *testing.T) {
	Matches = game.NewRegistry()
	Matches.Upsert(game.ActivePlayer{ID: "p1", Username: "alice", Mode: game.ModeWalls, Status: game.StatusIdle})

	HandleStateUpdate("p1", statePayload(t, message.StatePayload{
		Score:     30,
		Snake:     []game.Position{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Food:      &game.Position{X: 5, Y: 5},
		Direction: game.DirectionUp,
		Status:    game.StatusPlaying,
	}))

	player, ok := Matches.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 30.0, player.Score)
	assert.Equal(t, game.StatusPlaying, player.Status)
	assert.Equal(t, game.DirectionUp, player.Direction)
	assert.Len(t, player.Snake, 2)
	// Identity fields set at connect time survive state updates.
	assert.Equal(t, "alice", player.Username)
	assert.Equal(t, game.ModeWalls, player.Mode)
}

func TestHandleStateUpdate_KeepsStatusWhenOmitted(t *testing.T) {
	Matches = game.NewRegistry()
	Matches.Upsert(game.ActivePlayer{ID: "p1", Status: game.StatusPlaying})

	HandleStateUpdate("p1", statePayload(t, message.StatePayload{Score: 5}))

	player, _ := Matches.Get("p1")
	assert.Equal(t, game.StatusPlaying, player.Status)
}

func TestHandleStateUpdate_UnknownPlayer(t *testing.T) {
	Matches = game.NewRegistry()

	HandleStateUpdate("ghost", statePayload(t, message.StatePayload{Score: 5}))

	assert.Equal(t, 0, Matches.Len())
}

func TestHandleStateUpdate_BadPayload(t *testing.T) {
	Matches = game.NewRegistry()
	Matches.Upsert(game.ActivePlayer{ID: "p1", Score: 7})

	HandleStateUpdate("p1", message.Message{Type: "STATE", Payload: []byte("not json")})

	player, _ := Matches.Get("p1")
	assert.Equal(t, 7.0, player.Score)
}

func TestHandleGameOver(t *testing.T) {
	Matches = game.NewRegistry()
	Matches.Upsert(game.ActivePlayer{ID: "p1", Score: 10, Status: game.StatusPlaying})

	data, err := json.Marshal(message.GameOverPayload{Score: 120})
	require.NoError(t, err)
	HandleGameOver("p1", message.Message{Type: "GAME_OVER", Payload: data})

	player, ok := Matches.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 120.0, player.Score)
	assert.Equal(t, game.StatusGameOver, player.Status)
}
