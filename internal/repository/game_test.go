package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) (context.Context, GameRepository)
}

var backends = []backend{
	{
		name: "memory",
		open: func(_ *testing.T) (context.Context, GameRepository) {
			return context.Background(), NewMemoryGameRepository()
		},
	},
	{
		name: "redis",
		open: func(t *testing.T) (context.Context, GameRepository) {
			ctx, st := suite.New(t)
			return ctx, NewGameRepository(st.Storage, time.Minute)
		},
	},
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx, gameRepo := b.open(t)

			// Given: a game after the first exchange
			game := entity.NewGame("123")
			require.NoError(t, game.MakeTurn(entity.PlayerMark, 4))
			require.NoError(t, game.MakeTurn(entity.OpponentMark, 0))

			// When: it is stored and updated
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
			require.NoError(t, game.MakeTurn(entity.PlayerMark, 8))
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

			// Then: the latest board is read back
			stored, err := gameRepo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			assert.Equal(t, game.Board, stored.Board)
			assert.Equal(t, game.Status, stored.Status)
			assert.Equal(t, game.Turn, stored.Turn)
		})
	}
}

func TestGameRepository_GetByID(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name+"/NotFound", func(t *testing.T) {
			ctx, gameRepo := b.open(t)

			// When: GetByID is called with an unknown id
			retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

			// Then: ErrGameNotFound is returned
			require.ErrorIs(t, err, apperror.ErrGameNotFound)
			assert.Nil(t, retrievedGame)
		})

		t.Run(b.name+"/Copy", func(t *testing.T) {
			ctx, gameRepo := b.open(t)

			// Given: a stored game
			game := entity.NewGame("abc")
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

			// When: the retrieved copy is changed without saving
			retrieved, err := gameRepo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			retrieved.Board[0] = entity.PlayerMark

			// Then: the stored game is not affected
			again, err := gameRepo.GetByID(ctx, game.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.EmptyCell, again.Board[0])
		})
	}
}

func TestGameRepository_DeleteByID(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name+"/Success", func(t *testing.T) {
			ctx, gameRepo := b.open(t)

			// Given: a stored game
			game := entity.NewGame("123")
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

			// When: DeleteByID is called
			require.NoError(t, gameRepo.DeleteByID(ctx, game.ID))

			// Then: the game is gone
			_, err := gameRepo.GetByID(ctx, game.ID)
			require.ErrorIs(t, err, apperror.ErrGameNotFound)
		})

		t.Run(b.name+"/NotFound", func(t *testing.T) {
			ctx, gameRepo := b.open(t)

			err := gameRepo.DeleteByID(ctx, "9999999")

			require.ErrorIs(t, err, apperror.ErrGameNotFound)
		})
	}
}

func TestGameRepository_RedisTTL(t *testing.T) {
	ctx, st := suite.New(t)
	gameRepo := NewGameRepository(st.Storage, time.Minute)

	// Given: a stored game
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("ttl")))

	// Then: its key expires
	ttl, err := st.Storage.TTL(ctx, gameKeyPrefix+"ttl").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)
}
