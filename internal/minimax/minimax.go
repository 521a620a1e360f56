// Package minimax picks the computer's reply by searching the whole game tree.
//
// Scores are absolute: a finished board is worth +1 when the opponent (the computer) has a line,
// -1 when the player has one and 0 for a draw. The computer is always the maximizing side.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ScoreOpponentWins = 1
	ScorePlayerWins   = -1
	ScoreDraw         = 0
)

// Result describes the chosen reply.
type Result struct {
	Cell  int
	Score int
	Nodes int
}

// Score maps a terminal status onto the search's scale.
func Score(status entity.GameStatus) int {
	switch status {
	case entity.StatusOpponentWins:
		return ScoreOpponentWins
	case entity.StatusPlayerWins:
		return ScorePlayerWins
	default:
		return ScoreDraw
	}
}

// SelectMove returns the cell the opponent should mark. The same board always yields the same cell.
func SelectMove(board *entity.Board) (int, error) {
	result, err := Analyze(board)
	if err != nil {
		return 0, err
	}

	return result.Cell, nil
}

// Analyze searches every continuation of board with the opponent to move. Candidate cells are
// tried in ascending order and only a strictly better score replaces the best one, so ties go to
// the lowest index. The board is borrowed: every trial mark is removed before Analyze returns.
func Analyze(board *entity.Board) (Result, error) {
	if status := entity.Evaluate(board); status.IsTerminal() {
		return Result{}, fmt.Errorf("%w: board is %s", apperror.ErrNoAvailableMoves, status)
	}

	s := searcher{board: board}
	best := Result{Cell: -1, Score: math.MinInt}

	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = entity.OpponentMark
		score := s.search(entity.PlayerMark, false)
		board[i] = entity.EmptyCell

		if score > best.Score {
			best.Cell = i
			best.Score = score
		}
	}

	best.Nodes = s.nodes

	return best, nil
}

type searcher struct {
	board *entity.Board
	nodes int
}

func (that *searcher) search(side entity.Cell, maximizing bool) int {
	that.nodes++

	if status := entity.Evaluate(that.board); status.IsTerminal() {
		return Score(status)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for i := range that.board {
		if that.board[i] != entity.EmptyCell {
			continue
		}

		that.board[i] = side
		score := that.search(side.Opposite(), !maximizing)
		that.board[i] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
