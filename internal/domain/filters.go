package domain

import (
	"log/slog"

	"github.com/mouse-blink/peptrace/internal/adapter"
	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/stat"
)

// FilterLimits are the thresholds of the post-build chain filters.
type FilterLimits struct {
	MinChainResidues    int
	TwistedPerChainMax  int
	TwistLimitDegrees   float64
	TrimDensityFraction float64
	TrimOmegaDegrees    float64
}

// PostFilters removes chains and terminal residues that the density or the
// peptide geometry do not support.
type PostFilters struct {
	limits FilterLimits
	logger *slog.Logger
}

// NewPostFilters creates the filters.
func NewPostFilters(limits FilterLimits, logger *slog.Logger) *PostFilters {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostFilters{limits: limits, logger: logger}
}

// omega returns the CA-C-N-CA torsion in degrees between residue a (the
// one with the CO) and residue b. ok is false when an atom is missing.
func omega(a, b m.Residue) (float64, bool) {
	ca1, ok1 := a.Atom(m.AtomCA)
	c1, ok2 := a.Atom(m.AtomC)
	n2, ok3 := b.Atom(m.AtomN)
	ca2, ok4 := b.Atom(m.AtomCA)

	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, false
	}

	return degrees(torsion(ca1.Position, c1.Position, n2.Position, ca2.Position)), true
}

// withinOpen reports whether deg lies in (-limit, limit).
func withinOpen(deg, limit float64) bool {
	return deg > -limit && deg < limit
}

// RejectTwisted deletes chains with more twisted peptides than allowed. A
// peptide is twisted when omega is more than the twist limit away from 180.
func (f *PostFilters) RejectTwisted(model m.Model) (m.Model, []string) {
	drop := make(map[int]struct{})

	var deleted []string

	for fi, frag := range model.Fragments {
		twisted := 0

		for i := 0; i+1 < len(frag.Residues); i++ {
			w, ok := omega(frag.Residues[i], frag.Residues[i+1])
			if !ok {
				f.logger.Warn("peptide check skipped, atoms missing", "chain", frag.ID, "residue", frag.Residues[i].SeqNum)
				continue
			}

			if withinOpen(w, 180-f.limits.TwistLimitDegrees) {
				twisted++
			}
		}

		if twisted > f.limits.TwistedPerChainMax {
			drop[fi] = struct{}{}
			deleted = append(deleted, frag.ID)
		}
	}

	return model.Without(drop), deleted
}

// RejectShort deletes chains with fewer residues than the minimum. The
// minimum is capped at the longest chain, so the longest always survive.
func (f *PostFilters) RejectShort(model m.Model) (m.Model, []string) {
	longest := 0
	for _, frag := range model.Fragments {
		longest = max(longest, len(frag.Residues))
	}

	minimum := min(f.limits.MinChainResidues, longest)
	drop := make(map[int]struct{})

	var deleted []string

	for fi, frag := range model.Fragments {
		if len(frag.Residues) < minimum {
			drop[fi] = struct{}{}
			deleted = append(deleted, frag.ID)
		}
	}

	return model.Without(drop), deleted
}

// TrimTermini repeatedly strips chain ends whose residues sit in weak
// density or whose terminal peptide is not trans, then renumbers residues
// from one. The density cut is a fraction of the mean over all atoms.
// Chains trimmed away entirely are dropped.
func (f *PostFilters) TrimTermini(model m.Model, density adapter.DensitySampler) m.Model {
	out := model.Clone()

	var all []float64

	residueMeans := make([][]float64, len(out.Fragments))

	for fi, frag := range out.Fragments {
		residueMeans[fi] = make([]float64, len(frag.Residues))

		for ri, res := range frag.Residues {
			values := make([]float64, 0, len(res.Atoms))
			for _, atom := range res.Atoms {
				values = append(values, density.DensityAt(atom.Position))
			}

			if len(values) > 0 {
				residueMeans[fi][ri] = stat.Mean(values, nil)
			}

			all = append(all, values...)
		}
	}

	if len(all) == 0 {
		return out
	}

	crit := f.limits.TrimDensityFraction * stat.Mean(all, nil)

	empty := make(map[int]struct{})

	for fi := range out.Fragments {
		residues := f.trimChain(out.Fragments[fi], residueMeans[fi], crit)
		if len(residues) == 0 {
			empty[fi] = struct{}{}
		}

		for ri := range residues {
			residues[ri].SeqNum = ri + 1
		}

		out.Fragments[fi].Residues = residues
	}

	return out.Without(empty)
}

func (f *PostFilters) trimChain(frag m.Fragment, means []float64, crit float64) []m.Residue {
	residues := frag.Residues

	for {
		n := len(residues)
		if n == 0 {
			return residues
		}

		switch {
		case means[n-1] < crit:
			residues, means = residues[:n-1], means[:n-1]
			f.logger.Debug("trimmed weak terminal residue", "chain", frag.ID, "end", "C")
		case means[0] < crit:
			residues, means = residues[1:], means[1:]
			f.logger.Debug("trimmed weak terminal residue", "chain", frag.ID, "end", "N")
		case n > 1 && f.nonTrans(residues[n-2], residues[n-1]):
			residues, means = residues[:n-2], means[:n-2]
			f.logger.Debug("trimmed non-trans terminal peptide", "chain", frag.ID, "end", "C")
		case n > 1 && f.nonTrans(residues[0], residues[1]):
			residues, means = residues[2:], means[2:]
			f.logger.Debug("trimmed non-trans terminal peptide", "chain", frag.ID, "end", "N")
		default:
			return residues
		}
	}
}

func (f *PostFilters) nonTrans(a, b m.Residue) bool {
	w, ok := omega(a, b)

	return ok && withinOpen(w, f.limits.TrimOmegaDegrees)
}

// DensityFitScores sums the density at every atom of each chain.
func DensityFitScores(model m.Model, density adapter.DensitySampler) map[string]float64 {
	scores := make(map[string]float64, len(model.Fragments))

	for _, frag := range model.Fragments {
		sum := 0.0

		for _, res := range frag.Residues {
			for _, atom := range res.Atoms {
				sum += density.DensityAt(atom.Position)
			}
		}

		scores[frag.ID] = sum
	}

	return scores
}
