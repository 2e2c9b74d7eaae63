package adapter

import (
	"context"

	m "github.com/mouse-blink/peptrace/internal/model"
)

// Refiner improves the fit of one chain's residues to the density.
// It receives a private copy and returns the refined residues.
type Refiner interface {
	Refine(ctx context.Context, residues []m.Residue, density DensitySampler, weight float64) ([]m.Residue, error)
}

type noopRefiner struct{}

// NewNoopRefiner returns a Refiner that leaves coordinates unchanged.
func NewNoopRefiner() Refiner {
	return noopRefiner{}
}

func (noopRefiner) Refine(_ context.Context, residues []m.Residue, _ DensitySampler, _ float64) ([]m.Residue, error) {
	return residues, nil
}
