package domain

import (
	"math"

	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// fakeDensity is a density sampler over an analytic field.
type fakeDensity struct {
	fn       func(r3.Vec) float64
	mean     float64
	variance float64
}

func (d fakeDensity) DensityAt(p r3.Vec) float64 {
	return d.fn(p)
}

func (d fakeDensity) MeanAndVariance() (float64, float64) {
	return d.mean, d.variance
}

func uniformDensity(rho float64) fakeDensity {
	return fakeDensity{fn: func(r3.Vec) float64 { return rho }, mean: rho, variance: 1}
}

// blobDensity puts a unit gaussian of the given width on every centre.
func blobDensity(width float64, centres ...r3.Vec) fakeDensity {
	return fakeDensity{
		fn: func(p r3.Vec) float64 {
			sum := 0.0
			for _, c := range centres {
				sum += math.Exp(-r3.Norm2(r3.Sub(p, c)) / (2 * width * width))
			}

			return sum
		},
		variance: 1,
	}
}

// straightChain returns n peaks along x, one ideal CA-CA distance apart.
func straightChain(n int) []r3.Vec {
	out := make([]r3.Vec, n)
	for i := range out {
		out[i] = r3.Vec{X: idealCACA * float64(i)}
	}

	return out
}

// zigzagChain returns n peaks in the xy plane with CA-CA close to 3.8.
func zigzagChain(n int) []r3.Vec {
	out := make([]r3.Vec, n)
	for i := range out {
		out[i] = r3.Vec{X: 3.6 * float64(i), Y: 1.2 * float64(i%2)}
	}

	return out
}

func forwardLinks(n int) []m.DirectedLink {
	links := make([]m.DirectedLink, 0, n-1)
	for i := 0; i+1 < n; i++ {
		links = append(links, m.DirectedLink{Source: i, ScoredNode: m.ScoredNode{Target: i + 1, SpinScore: float64(n - i)}})
	}

	return links
}

// caChain is a fragment with one CA per position, numbered from first.
func caChain(id string, first int, positions ...r3.Vec) m.Fragment {
	frag := m.Fragment{ID: id}

	for i, p := range positions {
		res := m.Residue{SeqNum: first + i, Name: m.DefaultResidueName}
		res.SetAtom(m.AtomCA, p)
		frag.Residues = append(frag.Residues, res)
	}

	return frag
}

// peptideChain builds residues with N, CA and C so that peptide i is cis
// when cis[i] is set and trans otherwise. The chain runs along x from origin.
func peptideChain(id string, origin r3.Vec, cis ...bool) m.Fragment {
	frag := m.Fragment{ID: id}
	c := origin

	res := m.Residue{SeqNum: 1, Name: m.DefaultResidueName}
	res.SetAtom(m.AtomN, r3.Add(c, r3.Vec{X: -1, Y: 2}))
	res.SetAtom(m.AtomCA, r3.Add(c, r3.Vec{X: -0.5, Y: 1.2}))
	res.SetAtom(m.AtomC, c)
	frag.Residues = append(frag.Residues, res)

	for i, isCis := range cis {
		ca := r3.Add(c, r3.Vec{X: 1.83, Y: -1.2})
		if isCis {
			ca = r3.Add(c, r3.Vec{X: 1.83, Y: 1.2})
		}

		next := m.Residue{SeqNum: i + 2, Name: m.DefaultResidueName}
		next.SetAtom(m.AtomN, r3.Add(c, r3.Vec{X: 1.33}))
		next.SetAtom(m.AtomCA, ca)

		c = r3.Sub(ca, r3.Vec{X: -0.5, Y: 1.2})
		next.SetAtom(m.AtomC, c)

		frag.Residues = append(frag.Residues, next)
	}

	return frag
}
