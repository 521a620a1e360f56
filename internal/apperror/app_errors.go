package apperror

import "errors"

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameNotFound     = errors.New("game not found")
)

// IsInvalidMove - reports whether err is a rejected move that left the board unchanged.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrInvalidCell) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrNotYourTurn)
}
