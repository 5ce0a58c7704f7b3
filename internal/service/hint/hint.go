package hint

import (
	"github.com/BrandonAnsbergs/connect-four/internal/domain"
)

// Suggest picks a column for player to consider. It never plays the move.
// Priority: win now, block the opponent's immediate win, stay near the centre.
func Suggest(board domain.Board, player domain.Player) (int, bool) {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 || player == domain.None {
		return -1, false
	}

	if col, ok := winningColumn(board, validColumns, player); ok {
		return col, true
	}

	if col, ok := winningColumn(board, validColumns, player.Opponent()); ok {
		return col, true
	}

	return closestToCenter(validColumns), true
}

func winningColumn(board domain.Board, columns []int, player domain.Player) (int, bool) {
	for _, col := range columns {
		testBoard, row, err := board.SimulateMove(col, player)
		if err != nil {
			continue
		}
		if _, won := domain.CheckWin(&testBoard, row, col); won {
			return col, true
		}
	}
	return -1, false
}

// ties go to the left-hand column
func closestToCenter(columns []int) int {
	center := domain.Columns / 2
	best := columns[0]
	for _, col := range columns[1:] {
		if distance(col, center) < distance(best, center) {
			best = col
		}
	}
	return best
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
