package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidMove(t *testing.T) {
	t.Run("Wrapped move errors are invalid moves", func(t *testing.T) {
		for _, err := range []error{ErrInvalidCell, ErrCellOccupied, ErrGameFinished, ErrNotYourTurn} {
			// Given: a move error wrapped by an upper layer
			wrapped := fmt.Errorf("failed to make turn: %w", err)

			// Then: it is still recognized as an invalid move
			assert.True(t, IsInvalidMove(wrapped), err.Error())
		}
	})

	t.Run("Other errors are not invalid moves", func(t *testing.T) {
		assert.False(t, IsInvalidMove(ErrNoAvailableMoves))
		assert.False(t, IsInvalidMove(ErrGameNotFound))
		assert.False(t, IsInvalidMove(errors.New("boom")))
		assert.False(t, IsInvalidMove(nil))
	})
}
