package model

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// MapGrid is a density map sampled on a regular orthogonal grid.
// Values are stored with x varying fastest.
type MapGrid struct {
	Origin  r3.Vec
	Spacing r3.Vec
	Dims    [3]int
	Values  []float64
}

// Len returns the number of grid points the dimensions describe.
func (g MapGrid) Len() int {
	return g.Dims[0] * g.Dims[1] * g.Dims[2]
}

// Input is everything a tracing run reads.
type Input struct {
	Source Path
	Peaks  []r3.Vec
	Map    MapGrid
	Cell   *Cell
	Symops []Symop
}

// ChainSummary describes one fragment of a finished model.
type ChainSummary struct {
	ID       string
	Residues int
	Score    float64
}

// Report is the outcome of a tracing run.
type Report struct {
	RunID     string
	CreatedAt time.Time
	Source    Path
	Peaks     int
	Chains    []ChainSummary
	Model     Model
}
