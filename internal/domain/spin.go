package domain

import (
	"errors"
	"math"

	"github.com/mouse-blink/peptrace/internal/adapter"
	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrFlatMap is returned when the density has no variance to normalise by.
var ErrFlatMap = errors.New("density map has zero variance")

const spinSteps = 36

// probe is a density sample point in a link frame. along is measured from
// the source CA and scaled by the link length.
type probe struct {
	along  float64
	perp   float64
	dperp  float64
	weight float64
}

// Carbonyl O, nitrogen and side directions of a trans peptide, with the
// positions that should be empty around them.
var spinProbes = []probe{
	{along: 1.53, perp: 1.89, weight: 1.4},
	{along: 1.53, perp: 3.2, weight: -0.8},
	{along: 1.53 * 0.9, perp: -0.6, weight: -0.3},
	{along: 2.5, perp: -0.3, weight: 1.0},
	{along: 2.5, perp: -1.45, weight: -1.0},
	{along: 2.33, dperp: 1.85, weight: -0.9},
	{along: 2.33, dperp: -1.72, weight: -0.9},
}

const (
	midPointWeight = 1.6
	dipWeight      = 0.4
)

// SpinScorer scores directed CA->CA links against the density by spinning
// peptide probe points about the link axis.
type SpinScorer struct {
	positions []r3.Vec
	density   adapter.DensitySampler
	sigma     float64
}

// NewSpinScorer normalises scores by the density standard deviation.
func NewSpinScorer(positions []r3.Vec, density adapter.DensitySampler) (*SpinScorer, error) {
	_, variance := density.MeanAndVariance()
	if variance <= 0 || math.IsNaN(variance) {
		return nil, ErrFlatMap
	}

	return &SpinScorer{positions: positions, density: density, sigma: math.Sqrt(variance)}, nil
}

func (s *SpinScorer) f(rho float64) float64 {
	return rho / s.sigma
}

// Score returns the best scoring orientation of the link i->j. ok is false
// for coincident positions.
func (s *SpinScorer) Score(i, j int) (m.ScoredNode, bool) {
	a, b := s.positions[i], s.positions[j]

	frame, ok := newLinkFrame(a, b)
	if !ok {
		return m.ScoredNode{}, false
	}

	best := math.Inf(-1)
	bestAlpha := 0.0

	for step := range spinSteps {
		alpha := 2 * math.Pi * float64(step) / spinSteps

		sum := 0.0
		for _, pr := range spinProbes {
			sum += pr.weight * s.f(s.density.DensityAt(frame.point(pr.along, pr.perp, pr.dperp, alpha)))
		}

		if sum > best {
			best = sum
			bestAlpha = alpha
		}
	}

	rhoA := s.density.DensityAt(a)
	rhoB := s.density.DensityAt(b)
	rhoMid := s.density.DensityAt(midpoint(a, b))

	dip := s.f(rhoA + rhoB - 2*rhoMid)
	best += midPointWeight*s.f(rhoMid) - dipWeight*dip*dip/s.sigma

	return m.ScoredNode{Target: j, SpinScore: best, Alpha: bestAlpha}, true
}
