package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BrandonAnsbergs/connect-four/internal/config"
	"github.com/BrandonAnsbergs/connect-four/internal/logger"
	"github.com/BrandonAnsbergs/connect-four/internal/render"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

type playOptions struct {
	noColor  bool
	glyphs   string
	logLevel string
	logFile  string
}

// NewRootCmd creates the root command. Running it without a subcommand
// starts a game.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &playOptions{
		noColor:  !cfg.Color,
		glyphs:   cfg.Glyphs,
		logLevel: cfg.LogLevel,
		logFile:  cfg.LogFile,
	}

	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Two-player Connect Four in the terminal",
		Long: `connect4 is a two-player Connect Four game played in the terminal.

Players take turns typing a column between 1 and 7. Type 'h' for a hint
or 'q' to quit. When a game ends, press 'R' to restart or 'Q' to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", opts.noColor, "Disable colors and screen clearing (env: CONNECT4_COLOR, NO_COLOR)")
	rootCmd.PersistentFlags().StringVar(&opts.glyphs, "glyphs", opts.glyphs, "Piece glyphs: emoji, ascii (env: CONNECT4_GLYPHS)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (env: CONNECT4_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", opts.logFile, "Write logs to this file instead of stderr (env: CONNECT4_LOG_FILE)")

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newPlayCmd(opts *playOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "connect4 %s\n", Version)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	opts.glyphs = strings.ToLower(opts.glyphs)
	if opts.glyphs != config.GlyphsEmoji && opts.glyphs != config.GlyphsASCII {
		return fmt.Errorf("unknown glyph set %q (want %s or %s)", opts.glyphs, config.GlyphsEmoji, config.GlyphsASCII)
	}

	logOut, closeLog, err := logger.Open(opts.logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	log := logger.New(opts.logLevel, logOut)
	out := cmd.OutOrStdout()

	renderer := render.New(out, render.Options{
		Color:  !opts.noColor && isTerminal(out),
		Glyphs: render.GlyphsByName(opts.glyphs),
	})

	log.Info().Str("component", "cli").Str("glyphs", opts.glyphs).
		Stringer("level", log.GetLevel()).Msg("Starting connect4")

	return NewSession(cmd.InOrStdin(), renderer, log).Run(cmd.Context())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
