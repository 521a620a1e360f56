package entity

import "github.com/samber/lo"

const (
	EmptyCell    Cell = ""
	PlayerMark   Cell = "X"
	OpponentMark Cell = "O"
)

const BoardSize = 9

const (
	StatusInProgress   GameStatus = "in_progress"
	StatusPlayerWins   GameStatus = "player_wins"
	StatusOpponentWins GameStatus = "opponent_wins"
	StatusDraw         GameStatus = "draw"
)

// WinPatterns - every line of three cells that wins when uniformly marked: rows, columns, diagonals.
var WinPatterns = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Cell is the occupant of a single board square.
type Cell string

// Opposite returns the mark of the other side. EmptyCell has no opposite.
func (that Cell) Opposite() Cell {
	switch that {
	case PlayerMark:
		return OpponentMark
	case OpponentMark:
		return PlayerMark
	default:
		return EmptyCell
	}
}

// Board is a 3x3 grid stored row-major: 0,1,2 / 3,4,5 / 6,7,8.
type Board [BoardSize]Cell

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - indices of unoccupied cells in ascending order.
func (that *Board) EmptyCells() []int {
	return lo.Filter(lo.Range(BoardSize), func(i int, _ int) bool {
		return that[i] == EmptyCell
	})
}

// Diff - cells whose content differs in next, with their new marks, in ascending order.
func (that *Board) Diff(next *Board) []CellChange {
	return lo.FilterMap(lo.Range(BoardSize), func(i int, _ int) (CellChange, bool) {
		return CellChange{Cell: i, Mark: next[i]}, that[i] != next[i]
	})
}

// GameStatus is the outcome of a board as seen by Evaluate.
type GameStatus string

func (that GameStatus) IsTerminal() bool {
	return that != StatusInProgress
}

// Winner - the mark that completed a line, or EmptyCell for a draw or a game in progress.
func (that GameStatus) Winner() Cell {
	switch that {
	case StatusPlayerWins:
		return PlayerMark
	case StatusOpponentWins:
		return OpponentMark
	default:
		return EmptyCell
	}
}

// Evaluate - classifies the board. All eight patterns are inspected on every call; should both sides
// hold a line (unreachable in legal play), the player's line is reported.
func Evaluate(board *Board) GameStatus {
	var playerLine, opponentLine bool

	for _, pattern := range WinPatterns {
		a, b, c := board[pattern[0]], board[pattern[1]], board[pattern[2]]
		if a == EmptyCell || a != b || b != c {
			continue
		}

		switch a {
		case PlayerMark:
			playerLine = true
		case OpponentMark:
			opponentLine = true
		}
	}

	switch {
	case playerLine:
		return StatusPlayerWins
	case opponentLine:
		return StatusOpponentWins
	case board.IsFull():
		return StatusDraw
	default:
		return StatusInProgress
	}
}
