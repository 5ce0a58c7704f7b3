package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BrandonAnsbergs/connect-four/internal/domain"
	"github.com/BrandonAnsbergs/connect-four/internal/render"
	"github.com/BrandonAnsbergs/connect-four/internal/service/hint"
)

var (
	ErrNotANumber   = errors.New("input is not a number")
	ErrInvalidInput = errors.New("invalid input")
)

// Session is the console control loop. It owns the current game and
// replaces it wholesale on restart.
type Session struct {
	game     *domain.Game
	scores   *domain.Scoreboard
	in       io.Reader
	renderer *render.Renderer
	log      zerolog.Logger
}

func NewSession(in io.Reader, renderer *render.Renderer, log zerolog.Logger) *Session {
	return &Session{
		game:     domain.NewGame(),
		scores:   domain.NewScoreboard(),
		in:       in,
		renderer: renderer,
		log:      log.With().Str("component", "cli").Logger(),
	}
}

// Game exposes the current game for inspection.
func (s *Session) Game() *domain.Game {
	return s.game
}

func (s *Session) Scores() *domain.Scoreboard {
	return s.scores
}

type inputLine struct {
	text string
	err  error
}

// readLines feeds scanned lines into a channel so Run can also watch ctx.
// The channel is closed after EOF or a read error (sent as the last item).
func readLines(ctx context.Context, r io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}

// Run plays games until the user quits, input runs out or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, s.in)
	next := func() (string, bool, error) {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Interrupted")
			return "", false, nil
		case line, ok := <-lines:
			if !ok {
				s.log.Debug().Msg("Input closed")
				return "", false, nil
			}
			if line.err != nil {
				return "", false, fmt.Errorf("reading input: %w", line.err)
			}
			return strings.TrimSpace(line.text), true, nil
		}
	}

	s.renderer.Board(s.game)
	for {
		for !s.game.IsFinished() {
			s.renderer.Prompt(s.game.CurrentPlayer())

			text, ok, err := next()
			if err != nil || !ok {
				return err
			}
			if quit := s.handleTurn(text); quit {
				s.renderer.Message("Quitting...")
				return nil
			}
		}

		s.scores.Record(s.game)
		s.log.Info().Str("winner", s.game.Winner().String()).Int("moves", s.game.MoveCount()).
			Int("played", s.scores.Played()).Msg("Game finished")
		s.renderer.Message(s.scores.String())

		restart, err := s.awaitRestart(next)
		if err != nil || !restart {
			return err
		}
		s.log.Info().Msg("Restarting")
		s.game = domain.NewGame()
		s.renderer.Board(s.game)
	}
}

// awaitRestart keeps asking until the user picks restart or quit.
func (s *Session) awaitRestart(next func() (string, bool, error)) (bool, error) {
	for {
		s.renderer.RestartPrompt()

		text, ok, err := next()
		if err != nil || !ok {
			return false, err
		}

		switch text {
		case "R", "r":
			return true, nil
		case "Q", "q":
			s.renderer.Message("Quitting...")
			return false, nil
		default:
			s.renderer.Error(s.game, ErrInvalidInput)
		}
	}
}

// handleTurn acts on one line typed during an active game and reports
// whether the player asked to quit.
func (s *Session) handleTurn(text string) bool {
	switch strings.ToLower(text) {
	case "q", "quit":
		return true
	case "h", "hint":
		s.showHint()
		return false
	}

	column, err := ParseColumn(text)
	if err != nil {
		s.log.Debug().Str("input", text).Err(err).Msg("Rejected input")
		s.renderer.Error(s.game, err)
		return false
	}

	player := s.game.CurrentPlayer()
	if err := s.game.ApplyMove(column); err != nil {
		s.log.Debug().Int("column", column).Err(err).Msg("Rejected move")
		s.renderer.Error(s.game, err)
		return false
	}

	s.log.Debug().Str("player", player.String()).Int("column", column).
		Int("move", s.game.MoveCount()).Msg("Move applied")
	s.renderer.Board(s.game)
	return false
}

func (s *Session) showHint() {
	s.renderer.Board(s.game)
	col, ok := hint.Suggest(s.game.Board(), s.game.CurrentPlayer())
	if !ok {
		s.renderer.Message("No hint available")
		return
	}
	s.renderer.Message(fmt.Sprintf("Hint: try column %d", col+1))
}

// ParseColumn turns the 1-based column a user typed into the engine's
// 0-based index.
func ParseColumn(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	if n < 1 || n > domain.Columns {
		return -1, domain.ErrInvalidColumn
	}
	return n - 1, nil
}
