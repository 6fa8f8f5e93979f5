// Command originshift-viewer animates origin-shift steps in a window.
// Freshly laid passages glow and fade out.
//
// Keys: Space pauses, N steps once while paused, R resets the maze, S shows
// or hides the solution, P saves a PNG screenshot, + and - resize the grid,
// Esc quits. Left click moves the solution endpoints (start, then end);
// right click toggles a root.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/Kiryonn/OriginShiftTests/config"
	"github.com/Kiryonn/OriginShiftTests/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := config.NewFlagSet("originshift-viewer")
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, closer := logging.New(cfg.Log, stderr)
	defer closer.Close()

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Error("viewer setup failed", "error", err)
		return 1
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Origin Shift %s (%s)", cfg.Maze.Size(), cfg.Maze.Variant))
	ebiten.SetTPS(cfg.Viewer.TPS)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("viewer stopped", "error", err)
		return 1
	}
	if err := g.close(); err != nil {
		logger.Error("viewer shutdown", "error", err)
		return 1
	}

	return 0
}
