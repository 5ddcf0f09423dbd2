package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
)

// Response is the envelope every business outcome rides in.
type Response struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// respondError applies the two-tier error policy: business failures
// ride a 200 envelope, auth-gate failures surface as a transport-level
// 401, and everything else is a server fault.
func respondError(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case appErr.Code == http.StatusUnauthorized:
			return c.JSON(http.StatusUnauthorized, Response{Success: false, Error: appErr.Message})
		case appErr.Code >= 400 && appErr.Code < 500:
			return c.JSON(http.StatusOK, Response{Success: false, Error: appErr.Message})
		}
	}
	return err
}
