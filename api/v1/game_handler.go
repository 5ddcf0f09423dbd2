package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/jsalinasr/SnakeDuel/internal/game"
)

var Matches *game.Registry

func RegisterGameRoutes(g *echo.Group) {
	g.GET("/active", GetActivePlayersHandler)
	g.GET("/active/:id", GetActivePlayerHandler)
}

func GetActivePlayersHandler(c echo.Context) error {
	return respondData(c, Matches.List())
}

func GetActivePlayerHandler(c echo.Context) error {
	player, ok := Matches.Get(c.Param("id"))
	if !ok {
		return respondError(c, game.ErrPlayerNotFound)
	}
	return respondData(c, player)
}
