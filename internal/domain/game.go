package domain

// Game is the single mutable aggregate of a match. Its fields are only
// reachable through accessors so the renderer cannot change them.
type Game struct {
	board         Board
	currentPlayer Player
	finished      bool
	winner        Player
	moveCount     int
	lastRow       int
	lastCol       int
}

func NewGame() *Game {
	return &Game{
		currentPlayer: One,
		winner:        None,
		lastRow:       -1,
		lastCol:       -1,
	}
}

// ApplyMove drops the current player's disk into column (0-based).
// Nothing is mutated unless the move is legal.
func (g *Game) ApplyMove(column int) error {
	if g.finished {
		return ErrGameFinished
	}

	if !IsValidColumn(column) {
		return ErrInvalidColumn
	}

	row, ok := g.board.LowestEmptyRow(column)
	if !ok {
		return ErrColumnFull
	}

	g.board[row][column] = g.currentPlayer
	g.moveCount++
	g.lastRow, g.lastCol = row, column

	if winner := g.Evaluate(); winner != None {
		// the turn does not pass after a win
		g.winner = winner
		g.finished = true
		return nil
	}

	if g.moveCount == Cells {
		g.finished = true
		return nil
	}

	g.currentPlayer = g.currentPlayer.Opponent()
	return nil
}

// Evaluate returns the player owning a four-in-a-row, or None.
// Deciding a draw is left to ApplyMove.
func (g *Game) Evaluate() Player {
	if g.moveCount < minMovesToWin {
		return None
	}
	return FindWinner(&g.board)
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

func (g *Game) CurrentPlayer() Player {
	return g.currentPlayer
}

// Board returns a copy of the grid.
func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Cell(row, col int) Player {
	return g.board.Cell(row, col)
}

func (g *Game) IsFinished() bool {
	return g.finished
}

func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) IsDraw() bool {
	return g.finished && g.winner == None
}

// LastMove is where the most recent disk landed; ok is false before the first move.
func (g *Game) LastMove() (row, col int, ok bool) {
	if g.moveCount == 0 {
		return -1, -1, false
	}
	return g.lastRow, g.lastCol, true
}
