// Package config loads driver settings from flags, an optional config file
// and ORIGINSHIFT_* environment variables, in that order of precedence, and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/logging"
)

// EnvPrefix prefixes environment overrides. Keys map with "." replaced by "_":
// ORIGINSHIFT_MAZE_HEIGHT, ORIGINSHIFT_LOG_LEVEL, ...
const EnvPrefix = "ORIGINSHIFT"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Step variants accepted by Maze.Variant.
const (
	VariantUniform  = "uniform"
	VariantWeighted = "weighted"
	VariantMulti    = "multi"
)

// Config is the full driver configuration.
type Config struct {
	Maze    MazeConfig     `mapstructure:"maze"`
	Output  OutputConfig   `mapstructure:"output"`
	Viewer  ViewerConfig   `mapstructure:"viewer"`
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

// MazeConfig drives generation and solving.
type MazeConfig struct {
	Height   int    `mapstructure:"height"   validate:"min=3"`
	Width    int    `mapstructure:"width"    validate:"min=3"`
	Steps    int    `mapstructure:"steps"    validate:"min=0"`
	Variant  string `mapstructure:"variant"  validate:"oneof=uniform weighted multi"`
	Roots    int    `mapstructure:"roots"    validate:"min=1"` // total roots for the multi variant
	Seed     uint64 `mapstructure:"seed"`                      // 0 picks a time-based seed
	Validate bool   `mapstructure:"validate"`                  // check the tree after every step
	Solve    bool   `mapstructure:"solve"`
	Diameter bool   `mapstructure:"diameter"` // solve between the two farthest cells
}

// Size returns the configured grid size.
func (m MazeConfig) Size() gridgraph.Size {
	return gridgraph.Size{Height: m.Height, Width: m.Width}
}

// OutputConfig selects renderings of the final maze.
type OutputConfig struct {
	PNG      string `mapstructure:"png"`
	ASCII    bool   `mapstructure:"ascii"`
	CellSize int    `mapstructure:"cell_size" validate:"min=8,max=256"`
}

// ViewerConfig tunes the animated window.
type ViewerConfig struct {
	StepsPerFrame int     `mapstructure:"steps_per_frame" validate:"min=1"`
	TPS           int     `mapstructure:"tps"             validate:"min=1,max=240"`
	FadeSeconds   float64 `mapstructure:"fade_seconds"    validate:"gte=0"`
}

// MetricsConfig selects where Prometheus metrics go.
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace" validate:"required"`
	Textfile  string `mapstructure:"textfile"` // node-exporter textfile, written on exit
}

// defaults is the base layer under file, env and flags.
var defaults = map[string]any{
	"maze.height":            15,
	"maze.width":             15,
	"maze.steps":             2250,
	"maze.variant":           VariantUniform,
	"maze.roots":             1,
	"maze.seed":              uint64(0),
	"maze.validate":          false,
	"maze.solve":             false,
	"maze.diameter":          false,
	"output.png":             "",
	"output.ascii":           false,
	"output.cell_size":       32,
	"viewer.steps_per_frame": 1,
	"viewer.tps":             60,
	"viewer.fade_seconds":    0.5,
	"log.level":              "info",
	"log.format":             "text",
	"log.file":               "",
	"log.max_size":           10,
	"log.max_backups":        3,
	"log.max_age":            7,
	"log.compress":           false,
	"metrics.namespace":      "originshift",
	"metrics.textfile":       "",
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"height":          "maze.height",
	"width":           "maze.width",
	"steps":           "maze.steps",
	"variant":         "maze.variant",
	"roots":           "maze.roots",
	"seed":            "maze.seed",
	"validate":        "maze.validate",
	"solve":           "maze.solve",
	"diameter":        "maze.diameter",
	"png":             "output.png",
	"ascii":           "output.ascii",
	"cell-size":       "output.cell_size",
	"steps-per-frame": "viewer.steps_per_frame",
	"tps":             "viewer.tps",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"log-file":        "log.file",
	"metrics-file":    "metrics.textfile",
}

// NewFlagSet declares every flag the drivers understand, plus --config.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")

	fs.IntP("height", "H", 15, "maze height in cells (>= 3)")
	fs.IntP("width", "W", 15, "maze width in cells (>= 3)")
	fs.IntP("steps", "n", 2250, "origin-shift steps to run")
	fs.String("variant", VariantUniform, "step variant: uniform, weighted or multi")
	fs.Int("roots", 1, "number of roots for the multi variant")
	fs.Uint64("seed", 0, "random seed, 0 for time-based")
	fs.Bool("validate", false, "validate the tree after every step")
	fs.Bool("solve", false, "solve the final maze")
	fs.Bool("diameter", false, "solve between the two farthest cells instead of the corners")

	fs.String("png", "", "write a PNG rendering to this path")
	fs.Bool("ascii", false, "print an ASCII rendering")
	fs.Int("cell-size", 32, "PNG cell size in pixels")

	fs.Int("steps-per-frame", 1, "viewer: steps per frame")
	fs.Int("tps", 60, "viewer: ticks per second")

	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "json or text")
	fs.String("log-file", "", "rotating log file, empty for stderr")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile on exit")

	return fs
}

// Load parses args with fs (from NewFlagSet), merges defaults, the file named
// by --config, the environment and the flags actually set, then validates.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind --%s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct constraints and the cross-field rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Maze.Variant != VariantMulti && cfg.Maze.Roots != 1 {
		return fmt.Errorf("%w: %d roots need the %s variant", ErrInvalid, cfg.Maze.Roots, VariantMulti)
	}
	if n := cfg.Maze.Size().Len(); cfg.Maze.Roots > n/2 {
		return fmt.Errorf("%w: %d roots on %d cells", ErrInvalid, cfg.Maze.Roots, n)
	}

	return nil
}
