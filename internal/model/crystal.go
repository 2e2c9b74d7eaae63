package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidSymop is returned for symmetry operator strings that cannot be parsed.
var ErrInvalidSymop = errors.New("invalid symmetry operator")

// Cell is a crystallographic unit cell. Lengths in Angstrom, angles in degrees.
type Cell struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// Valid reports whether the cell has positive lengths and a positive volume.
func (c Cell) Valid() bool {
	if c.A <= 0 || c.B <= 0 || c.C <= 0 {
		return false
	}

	v := c.volumeFactor()

	return !math.IsNaN(v) && v > 0
}

func (c Cell) volumeFactor() float64 {
	ca, cb, cg := cosDeg(c.Alpha), cosDeg(c.Beta), cosDeg(c.Gamma)

	return math.Sqrt(1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg)
}

// axes returns the orthogonal cell edge vectors, a along x and b in the xy plane.
func (c Cell) axes() (r3.Vec, r3.Vec, r3.Vec) {
	ca, cb, cg := cosDeg(c.Alpha), cosDeg(c.Beta), cosDeg(c.Gamma)
	sg := math.Sin(c.Gamma * math.Pi / 180)

	a := r3.Vec{X: c.A}
	b := r3.Vec{X: c.B * cg, Y: c.B * sg}
	cz := r3.Vec{
		X: c.C * cb,
		Y: c.C * (ca - cb*cg) / sg,
		Z: c.C * c.volumeFactor() / sg,
	}

	return a, b, cz
}

// Orthogonal converts fractional coordinates to Angstrom.
func (c Cell) Orthogonal(frac r3.Vec) r3.Vec {
	a, b, cz := c.axes()

	return r3.Add(r3.Add(r3.Scale(frac.X, a), r3.Scale(frac.Y, b)), r3.Scale(frac.Z, cz))
}

// Fractional converts Angstrom coordinates to fractional coordinates.
func (c Cell) Fractional(orth r3.Vec) r3.Vec {
	a, b, cz := c.axes()

	z := orth.Z / cz.Z
	y := (orth.Y - z*cz.Y) / b.Y
	x := (orth.X - y*b.X - z*cz.X) / a.X

	return r3.Vec{X: x, Y: y, Z: z}
}

func cosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

// Symop is a symmetry operator acting on fractional coordinates.
type Symop struct {
	Rot   [3][3]float64
	Trans r3.Vec
	Text  string
}

// Identity is the x,y,z operator.
func Identity() Symop {
	return Symop{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Text: "x,y,z"}
}

// Apply transforms a fractional coordinate.
func (s Symop) Apply(frac r3.Vec) r3.Vec {
	in := [3]float64{frac.X, frac.Y, frac.Z}

	var out [3]float64

	for i := range 3 {
		out[i] = s.Rot[i][0]*in[0] + s.Rot[i][1]*in[1] + s.Rot[i][2]*in[2]
	}

	return r3.Add(r3.Vec{X: out[0], Y: out[1], Z: out[2]}, s.Trans)
}

// ParseSymop parses operators written like "-x,y+1/2,-z".
func ParseSymop(text string) (Symop, error) {
	parts := strings.Split(strings.ToLower(strings.ReplaceAll(text, " ", "")), ",")
	if len(parts) != 3 {
		return Symop{}, fmt.Errorf("%w: %q needs three components", ErrInvalidSymop, text)
	}

	op := Symop{Text: text}

	var trans [3]float64

	for row, expr := range parts {
		coeffs, shift, err := parseSymopRow(expr)
		if err != nil {
			return Symop{}, fmt.Errorf("%w: %q: %w", ErrInvalidSymop, text, err)
		}

		op.Rot[row] = coeffs
		trans[row] = shift
	}

	op.Trans = r3.Vec{X: trans[0], Y: trans[1], Z: trans[2]}

	return op, nil
}

func parseSymopRow(expr string) ([3]float64, float64, error) {
	var coeffs [3]float64

	shift := 0.0

	if expr == "" {
		return coeffs, 0, errors.New("empty component")
	}

	i := 0
	for i < len(expr) {
		sign := 1.0

		switch expr[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}

		if i >= len(expr) {
			return coeffs, 0, errors.New("dangling sign")
		}

		switch ch := expr[i]; ch {
		case 'x', 'y', 'z':
			coeffs[ch-'x'] += sign
			i++
		default:
			j := i
			for j < len(expr) && expr[j] != '+' && expr[j] != '-' {
				j++
			}

			v, err := parseFraction(expr[i:j])
			if err != nil {
				return coeffs, 0, err
			}

			shift += sign * v
			i = j
		}
	}

	return coeffs, shift, nil
}

func parseFraction(s string) (float64, error) {
	num, den, found := strings.Cut(s, "/")

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}

	if !found {
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("bad denominator %q", s)
	}

	return n / d, nil
}
