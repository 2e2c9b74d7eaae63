package domain

import (
	"context"
	"log/slog"

	"github.com/mouse-blink/peptrace/internal/adapter"
	m "github.com/mouse-blink/peptrace/internal/model"
	"golang.org/x/sync/errgroup"
)

type chainRefiner struct {
	refiner adapter.Refiner
	density adapter.DensitySampler
	weight  float64
	workers int
	logger  *slog.Logger
}

// refineModel refines every chain on its own copy, several at a time, and
// copies the new coordinates back. A chain whose refinement fails keeps its
// built coordinates.
func (r *chainRefiner) refineModel(ctx context.Context, model m.Model) m.Model {
	out := model.Clone()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.workers, 1))

	for i := range out.Fragments {
		g.Go(func() error {
			frag := &out.Fragments[i]

			refined, err := r.refiner.Refine(ctx, frag.Clone().Residues, r.density, r.weight)
			if err != nil {
				r.logger.Warn("refinement failed, keeping built chain", "chain", frag.ID, "error", err)
				return nil
			}

			copyCoordinates(frag, refined)

			return nil
		})
	}

	_ = g.Wait()

	return out
}

type atomKey struct {
	seq  int
	name string
}

// copyCoordinates moves refined positions onto matching atoms of frag.
// Atoms are matched by residue number and name.
func copyCoordinates(frag *m.Fragment, refined []m.Residue) {
	moved := make(map[atomKey]m.Atom)

	for _, res := range refined {
		for _, atom := range res.Atoms {
			moved[atomKey{seq: res.SeqNum, name: atom.Name}] = atom
		}
	}

	for ri := range frag.Residues {
		res := &frag.Residues[ri]
		for ai := range res.Atoms {
			if atom, ok := moved[atomKey{seq: res.SeqNum, name: res.Atoms[ai].Name}]; ok {
				res.Atoms[ai].Position = atom.Position
			}
		}
	}
}
