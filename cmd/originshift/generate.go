package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Kiryonn/OriginShiftTests/config"
	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/metrics"
	"github.com/Kiryonn/OriginShiftTests/originshift"
	"github.com/Kiryonn/OriginShiftTests/render"
	"github.com/Kiryonn/OriginShiftTests/solver"
)

// cancelCheckEvery is how many steps run between context checks.
const cancelCheckEvery = 1024

func generate(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("generating maze",
		slog.String("size", cfg.Maze.Size().String()),
		slog.Int("steps", cfg.Maze.Steps),
		slog.String("variant", cfg.Maze.Variant),
		slog.Uint64("seed", seed))

	tree, err := mazetree.New(cfg.Maze.Size())
	if err != nil {
		return err
	}
	m := metrics.New(cfg.Metrics.Namespace)
	rec := &originshift.Recorder{}
	e, err := originshift.New(tree,
		originshift.WithSeed(seed, seed^0x9e3779b97f4a7c15),
		originshift.WithSink(rec),
		originshift.WithLogger(logger),
		originshift.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	if err := e.SpawnRoots(cfg.Maze.Roots); err != nil {
		return err
	}

	for i := 0; i < cfg.Maze.Steps; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("interrupted after %d steps: %w", i, err)
			}
		}
		rec.Reset()
		switch cfg.Maze.Variant {
		case config.VariantWeighted:
			e.StepWeighted(nil)
		case config.VariantMulti:
			e.StepAll()
		default:
			e.Step()
		}
		if cfg.Maze.Validate {
			if err := tree.Validate(); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
	}

	v := e.Visits()
	logger.Info("generation finished",
		slog.Int("roots", tree.RootCount()),
		slog.Float64("coverage", v.Coverage()))
	fmt.Fprintf(stdout, "%s maze, %d %s steps, %d root(s), coverage %.1f%%\n",
		tree.Size(), cfg.Maze.Steps, cfg.Maze.Variant, tree.RootCount(), 100*v.Coverage())

	var path gridgraph.Path
	if cfg.Maze.Solve {
		path, err = solve(ctx, tree, cfg.Maze.Diameter)
		switch {
		case errors.Is(err, solver.ErrNoPath):
			logger.Warn("endpoints lie in different trees, no solution drawn", "error", err)
		case err != nil:
			return err
		default:
			m.ObservePath(len(path))
			fmt.Fprintf(stdout, "solution: %d cells from %s to %s\n", len(path), path[0], path[len(path)-1])
		}
	}

	if cfg.Output.ASCII {
		fmt.Fprint(stdout, render.ASCII(tree, path))
	}
	if cfg.Output.PNG != "" {
		if err := writePNG(cfg.Output.PNG, tree, cfg.Output.CellSize, path, freshEdges(rec)); err != nil {
			return err
		}
		logger.Info("png written", slog.String("path", cfg.Output.PNG))
	}
	if cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func solve(ctx context.Context, tree *mazetree.Tree, diameter bool) (gridgraph.Path, error) {
	if diameter {
		return solver.Diameter(ctx, tree)
	}
	from, to := solver.Endpoints(tree.Size())

	return solver.Solve(tree, from, to)
}

// freshEdges returns the edges added by the last step.
func freshEdges(rec *originshift.Recorder) []gridgraph.Edge {
	var out []gridgraph.Edge
	for _, ev := range rec.Events {
		if ev.Kind == originshift.Added {
			out = append(out, ev.Edge)
		}
	}

	return out
}

func writePNG(name string, tree *mazetree.Tree, cell int, path gridgraph.Path, fresh []gridgraph.Edge) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close png: %w", cerr)
		}
	}()

	return render.PNG(f, tree,
		render.WithCellSize(cell),
		render.WithSolution(path),
		render.WithFresh(fresh...))
}
