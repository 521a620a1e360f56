package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func wsURLFromHTTP(u string) string {
	return "ws" + strings.TrimPrefix(u, "http")
}

func dial(t *testing.T) (context.Context, *websocket.Conn) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gamePlay := service.NewGamePlayService(
		logger,
		service.NewGameService(repository.NewMemoryGameRepository()),
		service.NewBotService(logger),
	)

	ts := httptest.NewServer(New(logger, gamePlay))
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, wsURLFromHTTP(ts.URL), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "bye") })

	return ctx, conn
}

func roundTrip(t *testing.T, ctx context.Context, conn *websocket.Conn, req Message) Message {
	t.Helper()

	require.NoError(t, wsjson.Write(ctx, conn, req))

	var reply Message
	require.NoError(t, wsjson.Read(ctx, conn, &reply))
	require.Equal(t, req.Action, reply.Action)

	return reply
}

func cell(i int) *int {
	return &i
}

func TestServer_GameFlow(t *testing.T) {
	ctx, conn := dial(t)

	// Given: a new game
	created := roundTrip(t, ctx, conn, Message{Action: actionNewGame})
	require.Empty(t, created.Payload.Error)
	require.NotNil(t, created.Payload.Game)
	gameID := created.Payload.GameID
	assert.Equal(t, created.Payload.Game.ID, gameID)

	// When: the player takes the center
	played := roundTrip(t, ctx, conn, Message{Action: actionGameTurn, Payload: Payload{GameID: gameID, Cell: cell(4)}})

	// Then: the update carries both marks
	require.Empty(t, played.Payload.Error)
	require.NotNil(t, played.Payload.Update)
	assert.Equal(t, []entity.CellChange{
		{Cell: 4, Mark: entity.PlayerMark},
		{Cell: 0, Mark: entity.OpponentMark},
	}, played.Payload.Update.Changes)
	assert.False(t, played.Payload.Update.InputDisabled)

	// When: the occupied center is clicked again
	rejected := roundTrip(t, ctx, conn, Message{Action: actionGameTurn, Payload: Payload{GameID: gameID, Cell: cell(4)}})

	// Then: the move is rejected and the connection stays usable
	assert.Contains(t, rejected.Payload.Error, "occupied")
	assert.Nil(t, rejected.Payload.Update)

	fetched := roundTrip(t, ctx, conn, Message{Action: actionGetGame, Payload: Payload{GameID: gameID}})
	require.NotNil(t, fetched.Payload.Game)
	assert.Equal(t, played.Payload.Update.Board, fetched.Payload.Game.Board)

	// When: the game is reset
	reset := roundTrip(t, ctx, conn, Message{Action: actionGameReset, Payload: Payload{GameID: gameID}})

	// Then: the board is empty again
	require.Empty(t, reset.Payload.Error)
	assert.Equal(t, entity.Board{}, reset.Payload.Update.Board)
	assert.Equal(t, entity.StatusInProgress, reset.Payload.Update.Status)
}

func TestServer_BadRequests(t *testing.T) {
	ctx, conn := dial(t)

	t.Run("Unknown action", func(t *testing.T) {
		reply := roundTrip(t, ctx, conn, Message{Action: "game:join"})

		assert.Equal(t, "unknown action", reply.Payload.Error)
	})

	t.Run("Missing game id", func(t *testing.T) {
		reply := roundTrip(t, ctx, conn, Message{Action: actionGameTurn, Payload: Payload{Cell: cell(1)}})

		assert.Equal(t, errGameIDRequired.Error(), reply.Payload.Error)
	})

	t.Run("Missing cell", func(t *testing.T) {
		reply := roundTrip(t, ctx, conn, Message{Action: actionGameTurn, Payload: Payload{GameID: "abc"}})

		assert.Equal(t, errCellRequired.Error(), reply.Payload.Error)
	})

	t.Run("Unknown game", func(t *testing.T) {
		reply := roundTrip(t, ctx, conn, Message{Action: actionGameReset, Payload: Payload{GameID: "abc"}})

		assert.Contains(t, reply.Payload.Error, "game not found")
	})
}
