package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// GamePlayService runs stored sessions through the turn controller. Calls for the same game id
// are serialized, so each session sees one move sequence at a time.
type GamePlayService interface {
	CreateGame(ctx context.Context) (*entity.Game, *entity.Update, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Update, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Update, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService

	locks *sessionLocks
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
		locks:       newSessionLocks(),
	}
}

func (that *gamePlayService) CreateGame(ctx context.Context) (*entity.Game, *entity.Update, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, entity.NewUpdate(game, nil), nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) DeleteGame(ctx context.Context, gameID string) error {
	unlock := that.locks.lock(gameID)
	defer unlock()

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Update, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	controller, err := that.controller(ctx, gameID)
	if err != nil {
		return nil, err
	}

	update, err := controller.ApplyPlayerMove(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, controller.Game()); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return update, nil
}

func (that *gamePlayService) ResetGame(ctx context.Context, gameID string) (*entity.Update, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	controller, err := that.controller(ctx, gameID)
	if err != nil {
		return nil, err
	}

	update := controller.Reset()

	if err = that.gameService.UpdateGame(ctx, controller.Game()); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return update, nil
}

func (that *gamePlayService) controller(ctx context.Context, gameID string) (*tictactoe.GameController, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return tictactoe.NewGameController(game, that.botService, that.logUpdate), nil
}

func (that *gamePlayService) logUpdate(update *entity.Update) {
	log := that.logger.With("gameID", update.GameID)

	if update.InputDisabled {
		log.Info("game finished", "status", update.Status, "winner", update.Winner)
		return
	}

	log.Debug("game updated", "status", update.Status, "changes", len(update.Changes))
}
