package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsalinasr/SnakeDuel/api/middleware"
	"github.com/jsalinasr/SnakeDuel/internal/user"
)

const INVALID_REQUEST = "invalid request"

var Auth *user.AuthService

func RegisterAuthRoutes(g *echo.Group, authGate echo.MiddlewareFunc) {
	g.POST("/signup", SignupHandler)
	g.POST("/login", LoginHandler)
	g.POST("/logout", LogoutHandler)
	g.GET("/me", MeHandler, authGate)
}

func SignupHandler(c echo.Context) error {
	var req user.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	account, err := Auth.Signup(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, account)
}

func LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	token, account, err := Auth.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, echo.Map{
		"token": token,
		"user":  account,
	})
}

// LogoutHandler succeeds trivially: the token is a bare identifier
// with no server-side session to tear down.
func LogoutHandler(c echo.Context) error {
	return respondData(c, nil)
}

func MeHandler(c echo.Context) error {
	return respondData(c, middleware.CurrentUser(c))
}
