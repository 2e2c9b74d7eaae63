// Package adapter connects the tracing core to density maps, files and the
// external refinement and sequencing collaborators.
package adapter

import (
	"errors"
	"fmt"
	"math"

	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyMap is returned when a density grid has no points.
var ErrEmptyMap = errors.New("density map is empty")

// DensitySampler reads electron density at arbitrary positions.
// Implementations must be safe for concurrent readers.
type DensitySampler interface {
	DensityAt(pos r3.Vec) float64
	MeanAndVariance() (mean, variance float64)
}

type gridDensity struct {
	grid     m.MapGrid
	mean     float64
	variance float64
}

// NewGridDensity wraps a map grid with trilinear interpolation. Positions
// outside the grid sample zero.
func NewGridDensity(grid m.MapGrid) (DensitySampler, error) {
	if grid.Dims[0] <= 0 || grid.Dims[1] <= 0 || grid.Dims[2] <= 0 || len(grid.Values) == 0 {
		return nil, ErrEmptyMap
	}

	if len(grid.Values) != grid.Len() {
		return nil, fmt.Errorf("density map has %d values, dimensions need %d", len(grid.Values), grid.Len())
	}

	if grid.Spacing.X <= 0 || grid.Spacing.Y <= 0 || grid.Spacing.Z <= 0 {
		return nil, fmt.Errorf("density map spacing must be positive, got %v", grid.Spacing)
	}

	mean, variance := stat.PopMeanVariance(grid.Values, nil)

	return &gridDensity{grid: grid, mean: mean, variance: variance}, nil
}

func (g *gridDensity) MeanAndVariance() (float64, float64) {
	return g.mean, g.variance
}

func (g *gridDensity) DensityAt(pos r3.Vec) float64 {
	rel := r3.Sub(pos, g.grid.Origin)
	coords := [3]float64{
		rel.X / g.grid.Spacing.X,
		rel.Y / g.grid.Spacing.Y,
		rel.Z / g.grid.Spacing.Z,
	}

	var (
		lo [3]int
		hi [3]int
		t  [3]float64
	)

	for axis, c := range coords {
		lo[axis], hi[axis], t[axis] = g.cellIndex(c, g.grid.Dims[axis])
		if lo[axis] < 0 {
			return 0
		}
	}

	value := 0.0

	for corner := range 8 {
		weight := 1.0

		var idx [3]int

		for axis := range 3 {
			if corner&(1<<axis) != 0 {
				idx[axis] = hi[axis]
				weight *= t[axis]
			} else {
				idx[axis] = lo[axis]
				weight *= 1 - t[axis]
			}
		}

		if weight == 0 {
			continue
		}

		value += weight * g.at(idx)
	}

	return value
}

// cellIndex returns the bracketing grid indices and the interpolation weight
// along one axis, or lo < 0 when the coordinate is off the grid.
func (g *gridDensity) cellIndex(c float64, dim int) (int, int, float64) {
	if math.IsNaN(c) || c < 0 || c > float64(dim-1) {
		return -1, -1, 0
	}

	if dim == 1 {
		return 0, 0, 0
	}

	lo := int(math.Floor(c))
	if lo > dim-2 {
		lo = dim - 2
	}

	return lo, lo + 1, c - float64(lo)
}

func (g *gridDensity) at(idx [3]int) float64 {
	nx, ny := g.grid.Dims[0], g.grid.Dims[1]

	return g.grid.Values[idx[0]+nx*(idx[1]+ny*idx[2])]
}
