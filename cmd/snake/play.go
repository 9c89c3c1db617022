package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/spectate"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagSpectate string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start or restart
  Ctrl+S       - Save a screenshot to ~/.tui-snake/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --spectate :8080 --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The board has a fixed size, so refuse terminals it cannot fit in.
	minW, minH := tui.MinSize(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < minW || h < minH) {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, snake needs at least %dx%d\n", w, h, minW, minH)
		os.Exit(1)
	}

	// Logs would corrupt the TUI, so they are discarded unless --log-file is set.
	logger, closeLog := newLogger("snake", io.Discard)
	defer closeLog()

	opts := tui.Options{
		Logger: logger,
		Seed:   flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagSpectate != "" {
		hub := spectate.NewHub(logger)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := hub.Serve(ctx, flagSpectate); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
		opts.Spectators = hub
	}

	// Run the game
	if runErr := tui.Run(cfg, opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
