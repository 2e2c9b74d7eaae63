package model

// Trace is an ordered chain of directed links, extended only at its back end.
type Trace []DirectedLink

// Back returns the last link of the trace.
func (t Trace) Back() DirectedLink {
	return t[len(t)-1]
}

// Contains reports whether the directed pair is already part of the trace.
func (t Trace) Contains(link DirectedLink) bool {
	for _, l := range t {
		if l.SameDirection(link) {
			return true
		}
	}

	return false
}

// ForwardScore sums the spin scores of the links.
func (t Trace) ForwardScore() float64 {
	sum := 0.0
	for _, l := range t {
		sum += l.SpinScore
	}

	return sum
}

// BackwardScore sums the reverse scores of the links.
func (t Trace) BackwardScore() float64 {
	sum := 0.0
	for _, l := range t {
		sum += l.Reverse
	}

	return sum
}

// ScoredTrace is a surviving trace with its rank label and scores.
type ScoredTrace struct {
	ID            int
	Label         string
	Trace         Trace
	ForwardScore  float64
	BackwardScore float64
}

// NewScoredTrace labels the trace by its rank and computes its scores.
func NewScoredTrace(rank int, trace Trace) ScoredTrace {
	return ScoredTrace{
		ID:            rank,
		Label:         ChainLabel(rank),
		Trace:         trace,
		ForwardScore:  trace.ForwardScore(),
		BackwardScore: trace.BackwardScore(),
	}
}
