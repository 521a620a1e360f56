package entity

import "fmt"

// CellChange is a single square that the presentation layer has to redraw.
type CellChange struct {
	Cell int  `json:"cell"`
	Mark Cell `json:"mark"`
}

// Update is what the collaborator receives after every call into the game: the outcome,
// the cells that changed and whether further input must be blocked.
type Update struct {
	GameID        string       `json:"game_id"`
	Status        GameStatus   `json:"status"`
	Winner        Cell         `json:"winner,omitempty"`
	Message       string       `json:"message,omitempty"`
	Changes       []CellChange `json:"changes"`
	OpponentCell  *int         `json:"opponent_cell,omitempty"`
	InputDisabled bool         `json:"input_disabled"`
	Board         Board        `json:"board"`
}

func NewUpdate(game *Game, changes []CellChange) *Update {
	if changes == nil {
		changes = []CellChange{}
	}

	return &Update{
		GameID:        game.ID,
		Status:        game.Status,
		Winner:        game.Status.Winner(),
		Message:       resultMessage(game.Status),
		Changes:       changes,
		InputDisabled: game.IsFinished(),
		Board:         game.Board,
	}
}

func resultMessage(status GameStatus) string {
	switch status {
	case StatusDraw:
		return "It's a Draw!"
	case StatusPlayerWins, StatusOpponentWins:
		return fmt.Sprintf("Congratulations, Winner is %s", status.Winner())
	default:
		return ""
	}
}
