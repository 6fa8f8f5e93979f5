// Command originshift grows a maze with origin-shift steps, optionally
// solves it, and writes ASCII, PNG and Prometheus textfile outputs.
//
//	originshift -H 20 -W 30 --steps 6000 --variant weighted --solve --png maze.png
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/Kiryonn/OriginShiftTests/config"
	"github.com/Kiryonn/OriginShiftTests/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 1 on runtime failure,
// 2 on bad configuration.
func run(args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("originshift")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := generate(ctx, cfg, logger, stdout); err != nil {
		logger.Error("originshift failed", "error", err)
		return 1
	}

	return 0
}
