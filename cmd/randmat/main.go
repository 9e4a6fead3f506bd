// Command randmat fills matrices from the reference LCG and prints them.
//
// It is the reference-style driver for the matrix and prng packages: given
// the same seed, shape and range it prints the same matrix as the benchmark
// ports in other languages.
//
//	randmat --rows 3 --cols 5 --seed 74755
//	randmat --config plan.hcl --repeat 4 --bench
package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// CLI flags. Pointer fields are overrides: nil means "not given", so the
// plan file or the defaults apply. Boolean flags can only switch a mode on.
type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Config     string           `short:"f" type:"path" help:"HCL plan file (flags override its values)" env:"BENCHKIT_CONFIG"`
	Seed       *int64           `short:"s" help:"Generator seed (default 74755)" env:"BENCHKIT_SEED"`
	Rows       *int             `short:"r" help:"Number of rows (default 4)" env:"BENCHKIT_ROWS"`
	Cols       *int             `short:"c" help:"Number of columns (default 4)" env:"BENCHKIT_COLS"`
	Start      *int64           `help:"Inclusive lower bound of cell values (default 0)" env:"BENCHKIT_START"`
	End        *int64           `help:"Exclusive upper bound of cell values (default 100)" env:"BENCHKIT_END"`
	Repeat     *int             `short:"n" help:"Number of matrices to generate and sum (default 1)" env:"BENCHKIT_REPEAT"`
	Transposed bool             `short:"t" help:"Generate through a transposed view" env:"BENCHKIT_TRANSPOSED"`
	Bench      bool             `short:"b" help:"Benchmark mode: do not print the result" env:"BENCHKIT_BENCH"`
	LogLevel   string           `help:"Log level" default:"info" enum:"debug,info,warn,error" env:"BENCHKIT_LOG_LEVEL"`
}

// Resolve merges defaults, the plan file and explicit flags, in that order.
func (c *CLI) Resolve() (Config, error) {
	cfg := DefaultConfig()
	if c.Config != "" {
		plan, err := LoadPlan(c.Config)
		if err != nil {
			return Config{}, err
		}
		plan.Apply(&cfg)
	}

	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if c.Rows != nil {
		cfg.Rows = *c.Rows
	}
	if c.Cols != nil {
		cfg.Cols = *c.Cols
	}
	if c.Start != nil {
		cfg.Range.Start = *c.Start
	}
	if c.End != nil {
		cfg.Range.End = *c.End
	}
	if c.Repeat != nil {
		cfg.Repeat = *c.Repeat
	}
	cfg.Transposed = cfg.Transposed || c.Transposed
	cfg.Bench = cfg.Bench || c.Bench

	return cfg, nil
}

// newLogger builds the stderr logger for the given level name.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "randmat",
		Level:           lvl,
	}), nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("randmat"),
		kong.Description("Fill matrices from the reference benchmark LCG"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	logger, err := newLogger(cli.LogLevel)
	ctx.FatalIfErrorf(err)

	cfg, err := cli.Resolve()
	ctx.FatalIfErrorf(err)
	logger.Debug("configuration resolved", "config", cli.Config, "seed", cfg.Seed,
		"rows", cfg.Rows, "cols", cfg.Cols, "range", cfg.Range.String())

	ctx.FatalIfErrorf(run(cfg, os.Stdout, logger))
}
