package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// idealCACA is the CA to CA distance of a trans peptide.
const idealCACA = 3.81

const degenerateLength = 1e-6

var (
	zAxis = r3.Vec{Z: 1}
	yAxis = r3.Vec{Y: 1}
)

// linkFrame is the local frame of a CA->CA link. Probe offsets of the spin
// search and the backbone builder are expressed in it.
type linkFrame struct {
	origin r3.Vec
	axis   r3.Vec // b - a
	along  r3.Vec // unit axis
	perp   r3.Vec
	dperp  r3.Vec
	scale  float64 // length / idealCACA
}

func newLinkFrame(a, b r3.Vec) (linkFrame, bool) {
	diff := r3.Sub(b, a)

	length := r3.Norm(diff)
	if length < degenerateLength || math.IsNaN(length) {
		return linkFrame{}, false
	}

	perp := r3.Cross(zAxis, diff)
	if r3.Norm(perp) < degenerateLength*length {
		perp = r3.Cross(yAxis, diff)
	}

	perp = r3.Unit(perp)

	return linkFrame{
		origin: a,
		axis:   diff,
		along:  r3.Unit(diff),
		perp:   perp,
		dperp:  r3.Unit(r3.Cross(diff, perp)),
		scale:  length / idealCACA,
	}, true
}

// point returns the frame position at the given offsets, rotated by alpha
// about the link axis. along is scaled by the link length.
func (f linkFrame) point(along, perp, dperp, alpha float64) r3.Vec {
	rel := r3.Add(r3.Add(
		r3.Scale(along*f.scale, f.along),
		r3.Scale(perp, f.perp)),
		r3.Scale(dperp, f.dperp))

	return r3.Add(f.origin, r3.Rotate(rel, alpha, f.axis))
}

func distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// rotateAround rotates p by angle about the line through origin along axis.
func rotateAround(p, origin, axis r3.Vec, angle float64) r3.Vec {
	return r3.Add(origin, r3.Rotate(r3.Sub(p, origin), angle, axis))
}

// torsion returns the a-b-c-d dihedral in radians, in (-pi, pi].
func torsion(a, b, c, d r3.Vec) float64 {
	b1 := r3.Sub(b, a)
	b2 := r3.Sub(c, b)
	b3 := r3.Sub(d, c)

	n1 := r3.Cross(b1, b2)
	n2 := r3.Cross(b2, b3)

	y := r3.Norm(b2) * r3.Dot(b1, n2)
	x := r3.Dot(n1, n2)

	return math.Atan2(y, x)
}

// bondAngle returns the a-b-c angle in radians.
func bondAngle(a, b, c r3.Vec) float64 {
	u := r3.Sub(a, b)
	v := r3.Sub(c, b)

	cos := r3.Dot(u, v) / (r3.Norm(u) * r3.Norm(v))

	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// placeAtom builds d from a, b, c so that |cd| = length, angle bcd = angle
// and the a-b-c-d torsion is tors. Angles in radians.
func placeAtom(a, b, c r3.Vec, length, angle, tors float64) r3.Vec {
	bc := r3.Unit(r3.Sub(c, b))

	n := r3.Cross(r3.Sub(b, a), bc)
	if r3.Norm(n) < degenerateLength {
		n = r3.Cross(zAxis, bc)
		if r3.Norm(n) < degenerateLength {
			n = r3.Cross(yAxis, bc)
		}
	}

	n = r3.Unit(n)
	m := r3.Cross(n, bc)

	dx := -length * math.Cos(angle)
	dy := length * math.Sin(angle) * math.Cos(tors)
	dz := length * math.Sin(angle) * math.Sin(tors)

	return r3.Add(c, r3.Add(r3.Add(r3.Scale(dx, bc), r3.Scale(dy, m)), r3.Scale(dz, n)))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
