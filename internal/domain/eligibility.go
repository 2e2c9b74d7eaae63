package domain

import (
	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// GrowthLimits are the geometric thresholds applied while growing traces.
type GrowthLimits struct {
	// MinRefoldDistance is the least distance between the CA before the back
	// link and the new target, which rules out tight turns back on the chain.
	MinRefoldDistance float64
	// DuplicateGeometryDistance rejects links lying on top of an existing one.
	DuplicateGeometryDistance float64
	ProgenitorMargin          int
	MinTraceLength            int
}

// canExtend reports whether link may be appended to the back of trace.
func canExtend(positions []r3.Vec, trace m.Trace, link m.DirectedLink, limits GrowthLimits) bool {
	back := trace.Back()

	if link.Source != back.Target || link.Target == back.Source {
		return false
	}

	if distance(positions[back.Source], positions[link.Target]) < limits.MinRefoldDistance {
		return false
	}

	if trace.Contains(link) {
		return false
	}

	return !duplicatesGeometry(positions, trace, link, limits.DuplicateGeometryDistance)
}

// duplicatesGeometry reports whether some link of trace has both ends within
// limit of the candidate ends, in either orientation.
func duplicatesGeometry(positions []r3.Vec, trace m.Trace, link m.DirectedLink, limit float64) bool {
	src, tgt := positions[link.Source], positions[link.Target]

	for _, l := range trace {
		ls, lt := positions[l.Source], positions[l.Target]

		if distance(ls, src) < limit && distance(lt, tgt) < limit {
			return true
		}

		if distance(ls, tgt) < limit && distance(lt, src) < limit {
			return true
		}
	}

	return false
}
