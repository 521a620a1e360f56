package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the state of one session: the board, whose move is next and the current outcome.
type Game struct {
	ID        string     `json:"id"`
	Board     Board      `json:"board"`
	Status    GameStatus `json:"status"`
	Turn      Cell       `json:"turn"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset - clears the board and hands the first move to the player.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Status = StatusInProgress
	that.Turn = PlayerMark
	that.UpdatedAt = time.Now().UTC()
}

// MakeTurn - places mark at cell and recomputes the status. A rejected turn leaves the game untouched.
func (that *Game) MakeTurn(mark Cell, cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = mark
	that.UpdatedAt = time.Now().UTC()
	that.UpdateGameState()

	return nil
}

// UpdateGameState - re-evaluates the board; a finished game has nobody on turn.
func (that *Game) UpdateGameState() {
	that.Status = Evaluate(&that.Board)

	if that.Status.IsTerminal() {
		that.Turn = EmptyCell
		return
	}

	that.Turn = PlayerMark
	if len(that.Board.EmptyCells())%2 == 0 {
		that.Turn = OpponentMark
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Status {
	case StatusInProgress:
		return nil
	case StatusPlayerWins, StatusOpponentWins, StatusDraw:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
