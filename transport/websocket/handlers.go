package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, _ Payload) (Payload, error) {
	game, update, err := that.uGame.CreateGame(ctx)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to create a new game: %w", err)
	}

	return Payload{GameID: game.ID, Game: game, Update: update}, nil
}

func (that *Server) handleGetGame(ctx context.Context, req Payload) (Payload, error) {
	if req.GameID == "" {
		return Payload{}, errGameIDRequired
	}

	game, err := that.uGame.GetGame(ctx, req.GameID)
	if err != nil {
		return Payload{GameID: req.GameID}, err
	}

	return Payload{GameID: game.ID, Game: game, Update: entity.NewUpdate(game, nil)}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, req Payload) (Payload, error) {
	if req.GameID == "" {
		return Payload{}, errGameIDRequired
	}

	if req.Cell == nil {
		return Payload{GameID: req.GameID}, errCellRequired
	}

	update, err := that.uGame.MakeTurn(ctx, req.GameID, *req.Cell)
	if err != nil {
		return Payload{GameID: req.GameID, Cell: req.Cell}, err
	}

	return Payload{GameID: req.GameID, Update: update}, nil
}

func (that *Server) handleGameReset(ctx context.Context, req Payload) (Payload, error) {
	if req.GameID == "" {
		return Payload{}, errGameIDRequired
	}

	update, err := that.uGame.ResetGame(ctx, req.GameID)
	if err != nil {
		return Payload{GameID: req.GameID}, err
	}

	return Payload{GameID: req.GameID, Update: update}, nil
}
