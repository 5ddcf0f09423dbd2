package actions

import (
	"encoding/json"
	"log"

	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/websocket/message"
)

// HandleGameOver freezes the entry with its final score. The entry
// stays listed until the connection closes or the sweeper evicts it.
func HandleGameOver(playerId string, msg message.Message) {
	var payload message.GameOverPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Println("Error decoding game over payload:", err)
		return
	}

	player, ok := Matches.Get(playerId)
	if !ok {
		return
	}

	player.Score = payload.Score
	player.Status = game.StatusGameOver
	Matches.Upsert(player)
}
