package domain

import (
	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

const latticeReach = 3

// Globularize moves every position to its symmetry image, over the given
// operators and lattice translations up to three cells away, that lies
// closest to centre. A nil centre means the mean of the positions. Without
// operators only lattice translations are tried.
func Globularize(positions []r3.Vec, cell m.Cell, symops []m.Symop, centre *r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(positions))
	copy(out, positions)

	if len(positions) == 0 || !cell.Valid() {
		return out
	}

	if len(symops) == 0 {
		symops = []m.Symop{m.Identity()}
	}

	target := meanPosition(positions)
	if centre != nil {
		target = *centre
	}

	for i, p := range positions {
		frac := cell.Fractional(p)
		best := r3.Norm2(r3.Sub(p, target))

		for tx := -latticeReach; tx <= latticeReach; tx++ {
			for ty := -latticeReach; ty <= latticeReach; ty++ {
				for tz := -latticeReach; tz <= latticeReach; tz++ {
					shifted := r3.Add(frac, r3.Vec{X: float64(tx), Y: float64(ty), Z: float64(tz)})

					for _, op := range symops {
						image := cell.Orthogonal(op.Apply(shifted))
						if d := r3.Norm2(r3.Sub(image, target)); d < best {
							best = d
							out[i] = image
						}
					}
				}
			}
		}
	}

	return out
}

func meanPosition(positions []r3.Vec) r3.Vec {
	var sum r3.Vec
	for _, p := range positions {
		sum = r3.Add(sum, p)
	}

	return r3.Scale(1/float64(len(positions)), sum)
}
