package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/benchkit/prng"
)

// errInvalidRepeat is returned when fewer than one matrix is requested.
var errInvalidRepeat = errors.New("randmat: repeat must be >= 1")

// Config is the fully resolved driver configuration.
type Config struct {
	Seed       int64
	Rows       int
	Cols       int
	Range      prng.Range
	Repeat     int
	Transposed bool
	Bench      bool
}

// DefaultConfig returns the driver defaults: a 4x4 matrix of values in
// [0,100) drawn from the default seed.
func DefaultConfig() Config {
	return Config{
		Seed:   prng.DefaultSeed,
		Rows:   4,
		Cols:   4,
		Range:  prng.Range{Start: 0, End: 100},
		Repeat: 1,
	}
}

// Validate checks the settings the library cannot check for us up front.
// Negative dimensions are left to matrix.New.
func (c Config) Validate() error {
	if !c.Range.Valid() {
		return fmt.Errorf("range %s: %w", c.Range, prng.ErrDegenerateRange)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat %d: %w", c.Repeat, errInvalidRepeat)
	}

	return nil
}

// PlanFile is the optional HCL plan. Every attribute is optional; absent
// attributes keep the value they already had.
type PlanFile struct {
	Seed       *int64     `hcl:"seed,optional"`
	Rows       *int       `hcl:"rows,optional"`
	Cols       *int       `hcl:"cols,optional"`
	Transposed *bool      `hcl:"transposed,optional"`
	Repeat     *int       `hcl:"repeat,optional"`
	Range      *PlanRange `hcl:"range,block"`
}

// PlanRange is the `range { start = .. end = .. }` block.
type PlanRange struct {
	Start int64 `hcl:"start"`
	End   int64 `hcl:"end"`
}

// LoadPlan parses an HCL plan file.
func LoadPlan(filename string) (*PlanFile, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("plan file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var plan PlanFile
	diags = gohcl.DecodeBody(file.Body, nil, &plan)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return &plan, nil
}

// Apply overlays the attributes present in p onto cfg.
func (p *PlanFile) Apply(cfg *Config) {
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	if p.Rows != nil {
		cfg.Rows = *p.Rows
	}
	if p.Cols != nil {
		cfg.Cols = *p.Cols
	}
	if p.Transposed != nil {
		cfg.Transposed = *p.Transposed
	}
	if p.Repeat != nil {
		cfg.Repeat = *p.Repeat
	}
	if p.Range != nil {
		cfg.Range = prng.Range{Start: p.Range.Start, End: p.Range.End}
	}
}
