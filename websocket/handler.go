package websocket

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/internal/user"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var (
	Auth    *user.AuthService
	Matches *game.Registry
)

// WebSocketHandler is the ingest channel for live match state: the
// match-driving client connects with its session token, gets an idle
// registry entry, and streams state updates until it disconnects.
func WebSocketHandler(c echo.Context) error {
	account, err := Auth.Validate(c.QueryParam("token"))
	if err != nil {
		if errors.Is(err, user.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   user.ErrUnauthorized.Message,
			})
		}
		return err
	}

	mode := game.Mode(c.QueryParam("mode"))
	if !mode.Valid() {
		mode = game.ModeWalls
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	Matches.Upsert(game.ActivePlayer{
		ID:       account.ID,
		Username: account.Username,
		Mode:     mode,
		Status:   game.StatusIdle,
	})
	log.Printf("Player connected: %s", account.ID)
	go listenPlayerMessages(account.ID, ws)

	return nil
}
