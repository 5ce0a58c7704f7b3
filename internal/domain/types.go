package domain

// Player is the occupant of a cell and the identity of whoever moves next.
// None doubles as the empty cell and the "no winner" marker.
type Player int

const (
	None Player = 0
	One  Player = 1
	Two  Player = 2
)

func (p Player) String() string {
	switch p {
	case One:
		return "player 1"
	case Two:
		return "player 2"
	default:
		return "none"
	}
}

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case One:
		return Two
	case Two:
		return One
	default:
		return None
	}
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
	Cells   = Rows * Columns

	// fewest placements that can contain four of one colour (4 + 3 replies)
	minMovesToWin = 2*ToWin - 1
)

// basic error that can occur
type MoveError string

func (e MoveError) Error() string {
	return string(e)
}

const (
	ErrGameFinished  MoveError = "game is already finished"
	ErrInvalidColumn MoveError = "column must be between 1 and 7"
	ErrColumnFull    MoveError = "column is full"
)
