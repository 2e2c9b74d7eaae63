package model

// Pair is an unordered pair of peak indices with I < J.
type Pair struct {
	I int
	J int
}

// ScoredNode is the scored end of a directed CA->CA candidate link.
type ScoredNode struct {
	Target    int
	SpinScore float64
	// Alpha is the rotation (radians) about the link axis giving SpinScore.
	Alpha float64
	// Reverse holds the score of the opposite direction when HasReverse is set.
	Reverse    float64
	HasReverse bool
}

// DirectedLink is a candidate peptide link from Source to Target.
type DirectedLink struct {
	Source int
	ScoredNode
}

// Reversal reports whether l runs exactly opposite to other.
func (l DirectedLink) Reversal(other DirectedLink) bool {
	return l.Source == other.Target && l.Target == other.Source
}

// SameDirection reports whether l and other join the same peaks in the same order.
func (l DirectedLink) SameDirection(other DirectedLink) bool {
	return l.Source == other.Source && l.Target == other.Target
}
