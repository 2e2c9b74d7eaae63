package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/mouse-blink/peptrace/internal/adapter"
	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateLink is returned when a link joins coincident positions.
var ErrDegenerateLink = errors.New("degenerate link")

// Backbone offsets in the link frame, along the CA->CA axis and perpendicular to it.
var (
	carbonylO = probe{along: 1.53, perp: 1.89}
	peptideN  = probe{along: 2.44, perp: -0.47}
	carbonylC = probe{along: 1.46, perp: 0.48}
)

// Geometry used to invent an N and CB on a residue that has only CA and C.
const (
	inventedBond           = 1.482
	inventedAngleDegrees   = 109.63
	inventedTorsion        = 0.6
	cbTorsionOffsetDegrees = 111.5
	nCBSpinStepDegrees     = 3.0
)

var atomOrder = map[string]int{m.AtomN: 0, m.AtomCA: 1, m.AtomC: 2, m.AtomO: 3, m.AtomCB: 4}

// ChainBuilder turns traces into main chain plus CB fragments.
type ChainBuilder struct {
	positions []r3.Vec
	density   adapter.DensitySampler
	logger    *slog.Logger
}

// NewChainBuilder creates a builder over the peak positions. density may be
// nil, in which case invented atoms keep their ideal placement.
func NewChainBuilder(positions []r3.Vec, density adapter.DensitySampler, logger *slog.Logger) *ChainBuilder {
	if logger == nil {
		logger = slog.Default()
	}

	return &ChainBuilder{positions: positions, density: density, logger: logger}
}

// Build makes the fragment for one scored trace. Residue k+1 takes CA, C
// and O from link k; residue k+2 takes the N.
func (b *ChainBuilder) Build(st m.ScoredTrace) (m.Fragment, error) {
	if len(st.Trace) == 0 {
		return m.Fragment{}, fmt.Errorf("trace %s is empty", st.Label)
	}

	residues := make([]m.Residue, len(st.Trace)+1)
	for i := range residues {
		residues[i] = m.Residue{SeqNum: i + 1, Name: m.DefaultResidueName}
	}

	for k, link := range st.Trace {
		ca := b.positions[link.Source]

		frame, ok := newLinkFrame(ca, b.positions[link.Target])
		if !ok {
			return m.Fragment{}, fmt.Errorf("chain %s link %d: %w", st.Label, k, ErrDegenerateLink)
		}

		residues[k].SetAtom(m.AtomCA, ca)
		residues[k].SetAtom(m.AtomC, frame.point(carbonylC.along, carbonylC.perp, 0, link.Alpha))
		residues[k].SetAtom(m.AtomO, frame.point(carbonylO.along, carbonylO.perp, 0, link.Alpha))
		residues[k+1].SetAtom(m.AtomN, frame.point(peptideN.along, peptideN.perp, 0, link.Alpha))
	}

	frag := m.Fragment{ID: st.Label, Residues: residues}

	deleteSingletonNs(&frag)
	b.inventNsAndCBs(&frag)
	b.addCBs(&frag)
	dropEmptyResidues(&frag)

	for i := range frag.Residues {
		sortAtoms(&frag.Residues[i])
	}

	return frag, nil
}

// BuildModel builds the first limit traces; limit <= 0 builds all. A chain
// that fails is logged and left out.
func (b *ChainBuilder) BuildModel(traces []m.ScoredTrace, limit int) m.Model {
	var model m.Model

	for i, st := range traces {
		if limit > 0 && i >= limit {
			break
		}

		frag, err := b.buildSafely(st)
		if err != nil {
			b.logger.Warn("chain omitted", "chain", st.Label, "error", err)
			continue
		}

		model.Fragments = append(model.Fragments, frag)
	}

	return model
}

func (b *ChainBuilder) buildSafely(st m.ScoredTrace) (frag m.Fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chain %s: build panicked: %v", st.Label, r)
		}
	}()

	return b.Build(st)
}

func deleteSingletonNs(frag *m.Fragment) {
	for i := range frag.Residues {
		res := &frag.Residues[i]
		if len(res.Atoms) == 1 && res.Atoms[0].Name == m.AtomN {
			res.Atoms = nil
		}
	}
}

func dropEmptyResidues(frag *m.Fragment) {
	out := frag.Residues[:0]

	for _, res := range frag.Residues {
		if len(res.Atoms) > 0 {
			out = append(out, res)
		}
	}

	frag.Residues = out
}

// inventNsAndCBs places an N and a CB on residues that have CA and C but no
// N, choosing the rotation about CA-C that puts most density on both.
func (b *ChainBuilder) inventNsAndCBs(frag *m.Fragment) {
	angle := radians(inventedAngleDegrees)

	for i := range frag.Residues {
		res := &frag.Residues[i]
		if res.Has(m.AtomN) {
			continue
		}

		c, okC := res.Atom(m.AtomC)
		ca, okCA := res.Atom(m.AtomCA)

		if !okC || !okCA {
			continue
		}

		p0 := r3.Vec{}

		if i+1 < len(frag.Residues) {
			if next, ok := frag.Residues[i+1].Atom(m.AtomN); ok {
				p0 = next.Position
			}
		}

		n := placeAtom(p0, c.Position, ca.Position, inventedBond, angle, inventedTorsion)
		cb := placeAtom(p0, c.Position, ca.Position, inventedBond, angle, inventedTorsion+radians(cbTorsionOffsetDegrees))
		n, cb = b.spinNAndCB(n, cb, ca.Position, c.Position)

		res.SetAtom(m.AtomN, n)

		if !res.Has(m.AtomCB) {
			res.SetAtom(m.AtomCB, cb)
		}
	}
}

func (b *ChainBuilder) spinNAndCB(n, cb, ca, c r3.Vec) (r3.Vec, r3.Vec) {
	if b.density == nil {
		return n, cb
	}

	axis := r3.Sub(ca, c)
	best := math.Inf(-1)
	bestAngle := 0.0

	for deg := 0.0; deg < 360; deg += nCBSpinStepDegrees {
		a := radians(deg)

		sum := b.density.DensityAt(rotateAround(n, ca, axis, a)) + b.density.DensityAt(rotateAround(cb, ca, axis, a))
		if sum > best {
			best = sum
			bestAngle = a
		}
	}

	return rotateAround(n, ca, axis, bestAngle), rotateAround(cb, ca, axis, bestAngle)
}

// addCBs adds an ideal CB to every residue with N, CA and C but no CB.
func (b *ChainBuilder) addCBs(frag *m.Fragment) {
	for i := range frag.Residues {
		res := &frag.Residues[i]
		if len(res.Atoms) == 0 || res.Has(m.AtomCB) {
			continue
		}

		cb, missing := idealCB(*res)
		if missing != "" {
			b.logger.Warn("no CB added", "chain", frag.ID, "residue", res.SeqNum, "missing", missing)
			continue
		}

		res.SetAtom(m.AtomCB, cb)
	}
}

func idealCB(res m.Residue) (r3.Vec, string) {
	ca, ok := res.Atom(m.AtomCA)
	if !ok {
		return r3.Vec{}, m.AtomCA
	}

	c, ok := res.Atom(m.AtomC)
	if !ok {
		return r3.Vec{}, m.AtomC
	}

	n, ok := res.Atom(m.AtomN)
	if !ok {
		return r3.Vec{}, m.AtomN
	}

	toMid := r3.Unit(r3.Sub(midpoint(n.Position, c.Position), ca.Position))
	perp := r3.Unit(r3.Cross(r3.Sub(n.Position, c.Position), toMid))

	return r3.Add(ca.Position, r3.Sub(r3.Scale(1.21, perp), r3.Scale(0.95, toMid))), ""
}

func sortAtoms(res *m.Residue) {
	sort.SliceStable(res.Atoms, func(i, j int) bool {
		return rank(res.Atoms[i].Name) < rank(res.Atoms[j].Name)
	})
}

func rank(name string) int {
	if r, ok := atomOrder[name]; ok {
		return r
	}

	return len(atomOrder)
}
