package domain

import (
	"math"
	"sort"

	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

type cellKey [3]int

// cellList buckets positions into cubes of a fixed edge so that range
// queries only visit neighbouring cubes.
type cellList struct {
	edge  float64
	cells map[cellKey][]int
}

func newCellList(positions []r3.Vec, edge float64) *cellList {
	cl := &cellList{edge: edge, cells: make(map[cellKey][]int)}

	for i, p := range positions {
		key := cl.key(p)
		cl.cells[key] = append(cl.cells[key], i)
	}

	return cl
}

func (cl *cellList) key(p r3.Vec) cellKey {
	return cellKey{
		int(math.Floor(p.X / cl.edge)),
		int(math.Floor(p.Y / cl.edge)),
		int(math.Floor(p.Z / cl.edge)),
	}
}

// neighbours calls fn for every indexed position in the 27 cubes around p.
func (cl *cellList) neighbours(p r3.Vec, fn func(j int)) {
	k := cl.key(p)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				for _, j := range cl.cells[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
					fn(j)
				}
			}
		}
	}
}

// FindContacts returns the pairs {i < j} with lo <= |pos(i) - pos(j)| <= hi,
// sorted by i then j.
func FindContacts(positions []r3.Vec, lo, hi float64) []m.Pair {
	if len(positions) < 2 || hi <= 0 || math.IsNaN(hi) {
		return nil
	}

	lo = math.Max(lo, 0)
	loSq, hiSq := lo*lo, hi*hi
	cl := newCellList(positions, hi)

	var pairs []m.Pair

	for i, p := range positions {
		cl.neighbours(p, func(j int) {
			if j <= i {
				return
			}

			if d := r3.Norm2(r3.Sub(positions[j], p)); d >= loSq && d <= hiSq {
				pairs = append(pairs, m.Pair{I: i, J: j})
			}
		})
	}

	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}

		return pairs[a].J < pairs[b].J
	})

	return pairs
}

// FindPeptideContacts returns the candidate CA-CA pairs, distance +/- variation.
func FindPeptideContacts(positions []r3.Vec, distance, variation float64) []m.Pair {
	return FindContacts(positions, distance-variation, distance+variation)
}
