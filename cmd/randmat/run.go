package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/benchkit/matrix"
	"github.com/katalvlaran/benchkit/prng"
)

// run generates cfg.Repeat matrices from a single generator, sums them when
// there is more than one, and prints the result unless cfg.Bench is set.
// Cells are always drawn in logical row-major order, so a transposed run
// consumes the stream in the same order as a plain one.
func run(cfg Config, out io.Writer, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	g := prng.New(cfg.Seed)
	logger.Debug("generator seeded", "seed", cfg.Seed, "range", cfg.Range.String())

	mats := make([]*matrix.Matrix[int64], 0, cfg.Repeat)
	for i := 0; i < cfg.Repeat; i++ {
		m, err := generate(cfg, g)
		if err != nil {
			return fmt.Errorf("matrix %d: %w", i, err)
		}
		mats = append(mats, m)
		logger.Debug("matrix generated", "index", i, "state", g.State())
	}

	result := mats[0]
	if len(mats) > 1 {
		var err error
		if result, err = matrix.Sum(mats...); err != nil {
			return err
		}
	}

	if !cfg.Bench {
		if _, err := io.WriteString(out, result.String()); err != nil {
			return err
		}
	}
	logger.Info("randmat finished",
		"rows", cfg.Rows, "cols", cfg.Cols, "repeat", cfg.Repeat,
		"transposed", cfg.Transposed, "elapsed", time.Since(start))

	return nil
}

// generate builds one matrix and returns its storage. For transposed runs
// the storage is the Cols×Rows inner matrix, which is also what
// Transposed.String prints.
func generate(cfg Config, g *prng.Generator) (*matrix.Matrix[int64], error) {
	if cfg.Transposed {
		t, err := matrix.NewTransposed[int64](cfg.Rows, cfg.Cols)
		if err != nil {
			return nil, err
		}
		if err = fillGrid[int64](t, g, cfg.Range); err != nil {
			return nil, err
		}
		return t.Inner(), nil
	}

	m, err := matrix.New[int64](cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if err = fillGrid[int64](m, g, cfg.Range); err != nil {
		return nil, err
	}

	return m, nil
}

// fillGrid writes one draw per logical cell in row-major order.
func fillGrid[T matrix.Element](grid matrix.Grid[T], g *prng.Generator, r prng.Range) error {
	var x, y int
	for x = 0; x < grid.Rows(); x++ {
		for y = 0; y < grid.Cols(); y++ {
			v, err := g.NextInRange(r)
			if err != nil {
				return err
			}
			if err = grid.Set(x, y, T(v.Raw())); err != nil {
				return err
			}
		}
	}

	return nil
}
