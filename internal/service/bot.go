package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - searches the game tree for the opponent's reply and plays it.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	result, err := minimax.Analyze(&game.Board)
	if err != nil {
		return 0, fmt.Errorf("failed to select move: %w", err)
	}

	that.logger.Debug("move selected",
		"gameID", game.ID,
		"cell", result.Cell,
		"score", result.Score,
		"nodes", result.Nodes,
	)

	if err = game.MakeTurn(entity.OpponentMark, result.Cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result.Cell, nil
}
