package domain

// Board is the 6x7 grid. Row 0 is the top, row Rows-1 the bottom where
// pieces settle first. It is a value type, so copies never alias.
type Board [Rows][Columns]Player

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// Cell returns the occupant at (row, col), or None when out of range.
func (b *Board) Cell(row, col int) Player {
	if !inBounds(row, col) {
		return None
	}
	return b[row][col]
}

// LowestEmptyRow finds where a piece dropped into column would land.
func (b *Board) LowestEmptyRow(column int) (int, bool) {
	if !IsValidColumn(column) {
		return -1, false
	}

	// scanning from the bottom up, gravity puts the disk in the first gap
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == None {
			return row, true
		}
	}
	return -1, false
}

// DropDisk places player in the lowest empty cell of column and returns the row.
func (b *Board) DropDisk(column int, player Player) (int, error) {
	if !IsValidColumn(column) {
		return -1, ErrInvalidColumn
	}

	row, ok := b.LowestEmptyRow(column)
	if !ok {
		return -1, ErrColumnFull
	}
	b[row][column] = player
	return row, nil
}

// IsFull reports whether the top row has no gaps, which under gravity
// means every cell is taken.
func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == None {
			return false
		}
	}
	return true
}

// Filled counts the occupied cells.
func (b *Board) Filled() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] != None {
				count++
			}
		}
	}
	return count
}

// ValidMoves lists the columns that can still take a disk, left to right.
func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b[0][col] == None {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// SimulateMove drops a disk on a copy of the board and leaves b untouched.
func (b Board) SimulateMove(column int, player Player) (Board, int, error) {
	row, err := b.DropDisk(column, player)
	if err != nil {
		return b, -1, err
	}
	return b, row, nil
}

// CountInDirection counts the run of cells owned by the same player as
// (row, col) walking from it along (dRow, dCol). The origin counts as one.
// An empty origin yields zero.
func (b *Board) CountInDirection(row, col, dRow, dCol int) int {
	owner := b.Cell(row, col)
	if owner == None {
		return 0
	}

	count := 1
	r, c := row+dRow, col+dCol
	for inBounds(r, c) && b[r][c] == owner {
		count++
		r += dRow
		c += dCol
	}
	return count
}
