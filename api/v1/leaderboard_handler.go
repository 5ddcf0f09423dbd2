package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jsalinasr/SnakeDuel/api/middleware"
	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/internal/leaderboard"
)

var Leaderboard *leaderboard.LeaderboardService

func RegisterLeaderboardRoutes(g *echo.Group, authGate echo.MiddlewareFunc) {
	g.GET("", GetLeaderboardHandler)
	g.POST("", SubmitScoreHandler, authGate)
}

func GetLeaderboardHandler(c echo.Context) error {
	query := leaderboard.Query{
		Mode: game.Mode(c.QueryParam("mode")),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
		query.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
		query.Offset = offset
	}

	entries, err := Leaderboard.List(query)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, entries)
}

func SubmitScoreHandler(c echo.Context) error {
	var submission leaderboard.ScoreSubmission
	if err := c.Bind(&submission); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	entry, err := Leaderboard.Submit(middleware.CurrentUser(c), submission)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, entry)
}
