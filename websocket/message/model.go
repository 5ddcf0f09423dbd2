package message

import (
	"encoding/json"

	"github.com/jsalinasr/SnakeDuel/internal/game"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// StatePayload is the full live snapshot a match client pushes on each
// tick. It replaces the registry entry wholesale.
type StatePayload struct {
	Score     float64         `json:"score"`
	Snake     []game.Position `json:"snake"`
	Food      *game.Position  `json:"food,omitempty"`
	Direction game.Direction  `json:"direction,omitempty"`
	Status    game.Status     `json:"status"`
}

type GameOverPayload struct {
	Score float64 `json:"score"`
}
