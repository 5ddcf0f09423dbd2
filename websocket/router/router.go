package router

import (
	"log"

	"github.com/jsalinasr/SnakeDuel/websocket/actions"
	"github.com/jsalinasr/SnakeDuel/websocket/message"
)

var handlers = map[string]func(playerId string, msg message.Message){
	"STATE":     actions.HandleStateUpdate,
	"GAME_OVER": actions.HandleGameOver,
}

func RouteMessage(playerId string, msg message.Message) {
	if handler, ok := handlers[msg.Type]; ok {
		handler(playerId, msg)
	} else {
		log.Println("Unknown message type:", msg.Type)
	}
}
