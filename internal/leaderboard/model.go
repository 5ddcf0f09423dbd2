package leaderboard

import (
	"time"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
	"github.com/jsalinasr/SnakeDuel/internal/game"
)

var ErrInvalidMode = apperrors.NewAppError(400, "Invalid game mode", nil)

// Entry is one finalized score. Rows are append-only: the username is
// a snapshot of the submitter at submission time, never re-joined.
type Entry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Score     float64   `gorm:"not null" json:"score"`
	Mode      game.Mode `gorm:"not null" json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Entry) TableName() string {
	return "leaderboard"
}

type ScoreSubmission struct {
	Score float64   `json:"score"`
	Mode  game.Mode `json:"mode"`
}

// Query selects a ranked slice of the board. An empty Mode means all
// modes.
type Query struct {
	Mode   game.Mode
	Limit  int
	Offset int
}
