package websocket

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/internal/user"
)

func newHandlerContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWebSocketHandler_RejectsUnknownToken(t *testing.T) {
	mockRepo := &user.MockUserRepository{}
	Auth = user.NewAuthService(mockRepo)
	Matches = game.NewRegistry()
	mockRepo.On("GetUserByID", "ghost").Return(nil, nil)

	c, rec := newHandlerContext("/ws/game?token=ghost")
	err := WebSocketHandler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, Matches.Len())
}

func TestWebSocketHandler_RejectsMissingToken(t *testing.T) {
	mockRepo := &user.MockUserRepository{}
	Auth = user.NewAuthService(mockRepo)
	Matches = game.NewRegistry()

	c, rec := newHandlerContext("/ws/game")
	err := WebSocketHandler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebSocketHandler_StorageFaultIsServerFault(t *testing.T) {
	mockRepo := &user.MockUserRepository{}
	Auth = user.NewAuthService(mockRepo)
	Matches = game.NewRegistry()
	mockRepo.On("GetUserByID", "u1").
		Return(nil, apperrors.NewAppError(500, "error fetching user", assert.AnError))

	c, rec := newHandlerContext("/ws/game?token=u1")
	err := WebSocketHandler(c)

	// The fault propagates instead of being reported as a bad token.
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, Matches.Len())
}
