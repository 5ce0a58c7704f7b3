package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonAnsbergs/connect-four/internal/domain"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	rule        = "--------------------"
)

// GlyphSet maps cell owners to what gets printed for them.
type GlyphSet struct {
	One   string
	Two   string
	Empty string
	// Sep sits between cells; it is sized so column labels line up.
	Sep string
}

var (
	EmojiGlyphs = GlyphSet{One: "🔴", Two: "🔵", Empty: "⚫", Sep: " "}
	ASCIIGlyphs = GlyphSet{One: "X", Two: "O", Empty: ".", Sep: " "}
)

// GlyphsByName returns the named glyph set, defaulting to emoji.
func GlyphsByName(name string) GlyphSet {
	if strings.EqualFold(name, "ascii") {
		return ASCIIGlyphs
	}
	return EmojiGlyphs
}

type Options struct {
	// Color enables ANSI styling and clearing the screen between frames.
	Color  bool
	Glyphs GlyphSet
}

// Renderer draws the game state and messages for the console driver.
type Renderer struct {
	w      io.Writer
	opts   Options
	frame  lipgloss.Style
	errs   lipgloss.Style
	one    lipgloss.Style
	two    lipgloss.Style
	latest lipgloss.Style
}

func New(w io.Writer, opts Options) *Renderer {
	if opts.Glyphs == (GlyphSet{}) {
		opts.Glyphs = EmojiGlyphs
	}

	r := &Renderer{w: w, opts: opts}
	if !opts.Color {
		return r
	}

	lr := lipgloss.NewRenderer(w)
	r.frame = lr.NewStyle().Foreground(lipgloss.Color("2"))
	r.errs = lr.NewStyle().Foreground(lipgloss.Color("1"))
	r.one = lr.NewStyle().Foreground(lipgloss.Color("9"))
	r.two = lr.NewStyle().Foreground(lipgloss.Color("12"))
	r.latest = lr.NewStyle().Bold(true).Underline(true)
	return r
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.opts.Color {
		return text
	}
	return s.Render(text)
}

// Board redraws the whole frame: title, grid, column labels and, once the
// game is over, the result.
func (r *Renderer) Board(g *domain.Game) {
	var b strings.Builder

	if r.opts.Color {
		b.WriteString(clearScreen)
	}
	b.WriteString("\n\n")
	b.WriteString(r.style(r.frame, rule) + "\n")
	b.WriteString(r.style(r.frame, fmt.Sprintf("CONNECT 4 (Move %d)", g.MoveCount())) + "\n")
	b.WriteString(r.style(r.frame, rule) + "\n")

	lastRow, lastCol, hasLast := g.LastMove()
	for row := 0; row < domain.Rows; row++ {
		cells := make([]string, domain.Columns)
		for col := 0; col < domain.Columns; col++ {
			cells[col] = r.cell(g.Cell(row, col), hasLast && row == lastRow && col == lastCol)
		}
		b.WriteString(strings.Join(cells, r.opts.Glyphs.Sep) + "\n")
	}
	b.WriteString(r.columnLabels() + "\n")
	b.WriteString(r.style(r.frame, rule) + "\n")

	if g.IsFinished() {
		b.WriteString(r.style(r.frame, Result(g)) + "\n")
		b.WriteString(r.style(r.frame, rule) + "\n")
	}

	fmt.Fprint(r.w, b.String())
}

func (r *Renderer) cell(p domain.Player, latest bool) string {
	var glyph string
	var s lipgloss.Style
	switch p {
	case domain.One:
		glyph, s = r.opts.Glyphs.One, r.one
	case domain.Two:
		glyph, s = r.opts.Glyphs.Two, r.two
	default:
		return r.opts.Glyphs.Empty
	}

	if latest && r.opts.Color {
		s = s.Inherit(r.latest)
	}
	return r.style(s, glyph)
}

// labels are padded to the glyph width so they sit under their column
func (r *Renderer) columnLabels() string {
	width := lipgloss.Width(r.opts.Glyphs.Empty)
	labels := make([]string, domain.Columns)
	for col := 0; col < domain.Columns; col++ {
		label := strconv.Itoa(col + 1)
		labels[col] = label + strings.Repeat(" ", max(width-len(label), 0))
	}
	return strings.TrimRight(strings.Join(labels, r.opts.Glyphs.Sep), " ")
}

// Result is the end-of-game line, empty while the game is running.
func Result(g *domain.Game) string {
	if !g.IsFinished() {
		return ""
	}
	switch g.Winner() {
	case domain.One:
		return "Player 1 has won!"
	case domain.Two:
		return "Player 2 has won!"
	default:
		return "It's a draw!"
	}
}

// Error redraws the board and prints err beneath it.
func (r *Renderer) Error(g *domain.Game, err error) {
	r.Board(g)
	fmt.Fprintln(r.w, r.style(r.errs, "Error: "+err.Error()))
}

// Prompt asks p for a column.
func (r *Renderer) Prompt(p domain.Player) {
	fmt.Fprint(r.w, "\n\n")
	switch p {
	case domain.One:
		fmt.Fprintln(r.w, r.style(r.one, "Player 1"))
	case domain.Two:
		fmt.Fprintln(r.w, r.style(r.two, "Player 2"))
	}
	fmt.Fprintf(r.w, "Enter a column between 1 and %d:\n", domain.Columns)
}

func (r *Renderer) RestartPrompt() {
	fmt.Fprintln(r.w, "Press 'R' to restart or 'Q' to quit the game.")
}

func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.w, msg)
}
