package domain

// scan order matters: the first run of four found decides the winner
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

// FindWinner scans the whole board row by row and returns the owner of the
// first four-in-a-row it meets, or None.
func FindWinner(board *Board) Player {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := board[row][col]
			if cell == None {
				continue
			}

			for _, dir := range directions {
				if hasRun(board, row, col, dir[0], dir[1], cell) {
					return cell
				}
			}
		}
	}
	return None
}

// hasRun walks from (row, col) and stops as soon as ToWin cells in a row
// belong to player.
func hasRun(board *Board, row, col, dRow, dCol int, player Player) bool {
	count := 1
	r, c := row+dRow, col+dCol
	for inBounds(r, c) {
		if board[r][c] != player {
			return false
		}
		count++
		if count == ToWin {
			return true
		}
		r += dRow
		c += dCol
	}
	return false
}

// CheckWin reports whether the disk at (row, col) is part of a line of four,
// looking both ways along each axis. Used when only one cell changed.
func CheckWin(board *Board, row, col int) (Player, bool) {
	player := board.Cell(row, col)
	if player == None {
		return None, false
	}

	for _, dir := range directions {
		forward := board.CountInDirection(row, col, dir[0], dir[1])
		backward := board.CountInDirection(row, col, -dir[0], -dir[1])
		if forward+backward-1 >= ToWin {
			return player, true
		}
	}
	return None, false
}
