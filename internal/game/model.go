package game

import (
	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
)

var ErrPlayerNotFound = apperrors.NewAppError(404, "Player not found", nil)

// Mode is the rule variant a snake game is played under.
type Mode string

const (
	ModeWalls       Mode = "walls"
	ModePassThrough Mode = "pass-through"
)

func (m Mode) Valid() bool {
	return m == ModeWalls || m == ModePassThrough
}

type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game-over"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ActivePlayer is the live state of one player's match. The registry
// stores and hands out copies, so holding one never aliases shared state.
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     float64    `json:"score"`
	Mode      Mode       `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      *Position  `json:"food,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
	Status    Status     `json:"status"`
}
