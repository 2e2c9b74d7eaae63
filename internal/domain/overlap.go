package domain

import (
	"math"
	"sort"

	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// OverlapLimits are the thresholds for treating two chains as copies.
type OverlapLimits struct {
	ContactDistance     float64
	MinOverlapFraction  float64
	BigOverlapFraction  float64
	SameDirectionStdDev float64
}

// Deletions maps a surviving chain id to the chain ids it displaces.
type Deletions map[string]map[string]struct{}

// Chains returns every deleted chain id, sorted.
func (d Deletions) Chains() []string {
	set := make(map[string]struct{})

	for _, deleted := range d {
		for id := range deleted {
			set[id] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}

	sort.Strings(out)

	return out
}

func (d Deletions) add(survivor, deleted string) {
	if d[survivor] == nil {
		d[survivor] = make(map[string]struct{})
	}

	d[survivor][deleted] = struct{}{}
}

// residueDeltaStats accumulates |residue number differences| of the CA
// contacts between two chains.
type residueDeltaStats struct {
	deltas []float64
}

func (s *residueDeltaStats) add(a, b int) {
	d := a - b
	if d < 0 {
		d = -d
	}

	s.deltas = append(s.deltas, float64(d))
}

func (s *residueDeltaStats) count() int {
	return len(s.deltas)
}

// sameDirection reports whether the contacts keep a steady register, which
// they do when the chains run the same way.
func (s *residueDeltaStats) sameDirection(limit float64) bool {
	if len(s.deltas) == 0 {
		return true
	}

	_, variance := stat.PopMeanVariance(s.deltas, nil)

	return math.Sqrt(math.Max(variance, 0)) < limit
}

// OverlapResolver finds chains that are near copies of other chains.
type OverlapResolver struct {
	limits OverlapLimits
}

// NewOverlapResolver creates a resolver with the given thresholds.
func NewOverlapResolver(limits OverlapLimits) *OverlapResolver {
	return &OverlapResolver{limits: limits}
}

type chainPair struct {
	a int
	b int
}

// Resolve decides, for every pair of overlapping chains running the same
// way, which one to delete. scores holds one value per chain id; higher is better.
func (r *OverlapResolver) Resolve(model m.Model, scores map[string]float64) Deletions {
	var (
		positions []r3.Vec
		owners    []int
		seqNums   []int
	)

	for fi, frag := range model.Fragments {
		for _, res := range frag.Residues {
			if ca, ok := res.Atom(m.AtomCA); ok {
				positions = append(positions, ca.Position)
				owners = append(owners, fi)
				seqNums = append(seqNums, res.SeqNum)
			}
		}
	}

	stats := make(map[chainPair]*residueDeltaStats)

	for _, c := range FindContacts(positions, 0, r.limits.ContactDistance) {
		fa, fb := owners[c.I], owners[c.J]
		if fa == fb {
			continue
		}

		sa, sb := seqNums[c.I], seqNums[c.J]
		if fa > fb {
			fa, fb, sa, sb = fb, fa, sb, sa
		}

		key := chainPair{a: fa, b: fb}
		if stats[key] == nil {
			stats[key] = &residueDeltaStats{}
		}

		stats[key].add(sa, sb)
	}

	keys := make([]chainPair, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}

		return keys[i].b < keys[j].b
	})

	deletions := make(Deletions)

	for _, key := range keys {
		a, b := model.Fragments[key.a], model.Fragments[key.b]
		if survivor, deleted, ok := r.judge(a, b, stats[key], scores); ok {
			deletions.add(survivor, deleted)
		}
	}

	return deletions
}

func (r *OverlapResolver) judge(a, b m.Fragment, st *residueDeltaStats, scores map[string]float64) (string, string, bool) {
	count := st.count()
	na, nb := len(a.Residues), len(b.Residues)

	fracA := float64(count) / float64(na)
	fracB := float64(count) / float64(nb)

	if fracA <= r.limits.MinOverlapFraction && fracB <= r.limits.MinOverlapFraction {
		return "", "", false
	}

	if !st.sameDirection(r.limits.SameDirectionStdDev) {
		return "", "", false
	}

	big := fracA > r.limits.BigOverlapFraction || fracB > r.limits.BigOverlapFraction
	if !big && count != na-1 && count != nb-1 {
		return "", "", false
	}

	survivor, deleted := chooseDeletable(count, a.ID, na, b.ID, nb, scores)

	return survivor, deleted, true
}

// chooseDeletable prefers deleting a chain that is wholly contained in the
// other; otherwise the lower scoring chain goes.
func chooseDeletable(count int, idA string, na int, idB string, nb int, scores map[string]float64) (string, string) {
	if count == nb-1 && count < na-1 {
		return idA, idB
	}

	if count == na-1 && count < nb-1 {
		return idB, idA
	}

	if scores[idB] < scores[idA] {
		return idA, idB
	}

	return idB, idA
}

// Apply removes every deleted chain in one pass.
func (r *OverlapResolver) Apply(model m.Model, deletions Deletions) m.Model {
	gone := make(map[string]struct{})
	for _, id := range deletions.Chains() {
		gone[id] = struct{}{}
	}

	indices := make(map[int]struct{})

	for i, frag := range model.Fragments {
		if _, ok := gone[frag.ID]; ok {
			indices[i] = struct{}{}
		}
	}

	return model.Without(indices)
}
