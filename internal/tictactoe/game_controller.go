package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type bot interface {
	MakeTurn(game *entity.Game) (int, error)
}

// Listener is called with every update the controller produces.
type Listener func(update *entity.Update)

// GameController owns a single game and drives it one player move at a time: the player's mark,
// then, if the game is still open, the computer's reply.
type GameController struct {
	game      *entity.Game
	bot       bot
	listeners []Listener
}

func NewGameController(game *entity.Game, bot bot, listeners ...Listener) *GameController {
	return &GameController{
		game:      game,
		bot:       bot,
		listeners: listeners,
	}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// ApplyPlayerMove - marks cell for the player and answers with the computer's move.
// An invalid move returns an error and leaves the game unchanged.
func (that *GameController) ApplyPlayerMove(cell int) (*entity.Update, error) {
	if err := that.game.MakeTurn(entity.PlayerMark, cell); err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	changes := []entity.CellChange{{Cell: cell, Mark: entity.PlayerMark}}

	var opponentCell *int
	if that.game.IsOngoing() {
		reply, err := that.bot.MakeTurn(that.game)
		if err != nil {
			return nil, fmt.Errorf("opponent failed to reply: %w", err)
		}

		changes = append(changes, entity.CellChange{Cell: reply, Mark: entity.OpponentMark})
		opponentCell = &reply
	}

	update := entity.NewUpdate(that.game, changes)
	update.OpponentCell = opponentCell

	that.notify(update)

	return update, nil
}

// Reset - clears the board from any state; the update lists every square that was emptied.
func (that *GameController) Reset() *entity.Update {
	before := that.game.Board
	that.game.Reset()

	update := entity.NewUpdate(that.game, before.Diff(&that.game.Board))
	that.notify(update)

	return update
}

func (that *GameController) notify(update *entity.Update) {
	for _, listener := range that.listeners {
		listener(update)
	}
}
