package actions

import (
	"encoding/json"
	"log"

	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/websocket/message"
)

var Matches *game.Registry

func HandleStateUpdate(playerId string, msg message.Message) {
	var payload message.StatePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Println("Error decoding state payload:", err)
		return
	}

	player, ok := Matches.Get(playerId)
	if !ok {
		return
	}

	player.Score = payload.Score
	player.Snake = payload.Snake
	player.Food = payload.Food
	player.Direction = payload.Direction
	if payload.Status != "" {
		player.Status = payload.Status
	}
	Matches.Upsert(player)
}
