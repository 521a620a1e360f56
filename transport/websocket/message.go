package websocket

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

const (
	actionNewGame   = "game:new"
	actionGetGame   = "game:get"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string  `json:"action"`
	Payload Payload `json:"payload"`
}

// Payload is shared by requests and replies; each action reads the fields it needs.
type Payload struct {
	GameID string         `json:"game_id,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Update *entity.Update `json:"update,omitempty"`
	Error  string         `json:"error,omitempty"`
}
