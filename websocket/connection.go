package websocket

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"github.com/jsalinasr/SnakeDuel/websocket/message"
	"github.com/jsalinasr/SnakeDuel/websocket/router"
)

func listenPlayerMessages(playerId string, conn *websocket.Conn) {
	defer func() {
		log.Printf("Player disconnected: %s", playerId)
		Matches.Remove(playerId)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg message.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Println("Error decoding message:", err)
			continue
		}

		router.RouteMessage(playerId, msg)
	}
}
