package domain

import (
	"fmt"
	"math"
)

const (
	KFactor       = 32.0
	InitialRating = 1200
)

// CalculateElo returns the new rating for player A.
// score is 1.0 for a win, 0.5 for a draw, and 0.0 for a loss.
func CalculateElo(ratingA, ratingB int, score float64) int {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
	newRating := float64(ratingA) + KFactor*(score-expectedScoreA)

	if newRating < 0 {
		return 0
	}
	return int(math.Round(newRating))
}

// Scoreboard tallies finished games between the two seats for as long as
// the process runs. It lives outside Game so a restart keeps the tally.
type Scoreboard struct {
	Wins    [3]int // indexed by Player; Wins[None] stays 0
	Draws   int
	Ratings [3]int
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{Ratings: [3]int{0, InitialRating, InitialRating}}
}

// Record adds a finished game. Games still in progress are ignored.
func (s *Scoreboard) Record(g *Game) bool {
	if !g.IsFinished() {
		return false
	}

	scoreOne := 0.5
	switch g.Winner() {
	case One:
		scoreOne = 1.0
	case Two:
		scoreOne = 0.0
	default:
		s.Draws++
	}
	if w := g.Winner(); w != None {
		s.Wins[w]++
	}

	one, two := s.Ratings[One], s.Ratings[Two]
	s.Ratings[One] = CalculateElo(one, two, scoreOne)
	s.Ratings[Two] = CalculateElo(two, one, 1.0-scoreOne)
	return true
}

func (s *Scoreboard) Played() int {
	return s.Wins[One] + s.Wins[Two] + s.Draws
}

func (s *Scoreboard) String() string {
	return fmt.Sprintf("Player 1: %d wins (%d) | Player 2: %d wins (%d) | Draws: %d",
		s.Wins[One], s.Ratings[One], s.Wins[Two], s.Ratings[Two], s.Draws)
}
