package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jsalinasr/SnakeDuel/internal/user"
)

const userContextKey = "authUser"

// Authenticator resolves a session token to the user it belongs to.
type Authenticator interface {
	Validate(token string) (*user.PublicUser, error)
}

// TokenAuth gates a route on a bearer token. A missing or unknown
// token is rejected at the transport level, never as a business error.
// A storage fault while resolving the token stays a server fault.
func TokenAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := auth.Validate(bearerToken(c))
			if err != nil {
				if errors.Is(err, user.ErrUnauthorized) {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"success": false,
						"error":   user.ErrUnauthorized.Message,
					})
				}
				return err
			}
			c.Set(userContextKey, account)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return token
}

// CurrentUser returns the user TokenAuth stored on the context. It is
// nil on routes not behind the middleware.
func CurrentUser(c echo.Context) *user.PublicUser {
	account, _ := c.Get(userContextKey).(*user.PublicUser)
	return account
}
