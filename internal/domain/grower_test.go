package domain

import (
	"context"
	"testing"

	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func defaultGrowthLimits() GrowthLimits {
	return GrowthLimits{
		MinRefoldDistance:         5.0,
		DuplicateGeometryDistance: 3.0,
		ProgenitorMargin:          4,
		MinTraceLength:            4,
	}
}

func bothWays(links []m.DirectedLink) []m.DirectedLink {
	out := make([]m.DirectedLink, 0, 2*len(links))
	for _, l := range links {
		out = append(out, l, m.DirectedLink{Source: l.Target, ScoredNode: m.ScoredNode{Target: l.Source, SpinScore: l.SpinScore}})
	}

	return out
}

func TestTreeGrower_StraightChain(t *testing.T) {
	positions := straightChain(8)

	result, err := NewTreeGrower(positions, defaultGrowthLimits(), 2).Grow(context.Background(), forwardLinks(8))
	require.NoError(t, err)
	require.NotEmpty(t, result.Traces)

	full := 0
	for _, tr := range result.Traces {
		assert.Greater(t, len(tr), 1, "singleton trace survived")

		if len(tr) == 7 {
			full++
		}
	}

	assert.Equal(t, 1, full)
	assert.Equal(t, []int{7, 6, 5, 4}, traceLengths(result.Traces))

	first := result.Traces[0]
	require.Len(t, first, 7)
	assert.Equal(t, 0, first[0].Source)
	assert.Equal(t, 7, first.Back().Target)

	// Shorter survivors are suffixes seeded further along the chain.
	for i, tr := range result.Traces {
		assert.Equal(t, i, tr[0].Source)
		assert.Equal(t, 7, tr.Back().Target)
	}
}

func TestTreeGrower_StraightChainBothDirections(t *testing.T) {
	positions := straightChain(8)

	scorer, err := NewSpinScorer(positions, uniformDensity(1))
	require.NoError(t, err)

	pairs := FindPeptideContacts(positions, 3.81, 0.4)
	require.Len(t, pairs, 7)

	links, err := NewPairRanker(scorer, 2).Rank(context.Background(), pairs, 0)
	require.NoError(t, err)
	require.Len(t, links, 14)

	result, err := NewTreeGrower(positions, defaultGrowthLimits(), 2).Grow(context.Background(), links)
	require.NoError(t, err)

	// One full trace per direction; overlap resolution later keeps only one.
	assert.Equal(t, []int{7, 7, 6, 6, 5, 5, 4, 4}, traceLengths(result.Traces))

	ends := make(map[[2]int]bool)
	for _, tr := range result.Traces[:2] {
		visited := map[int]bool{tr[0].Source: true}
		for _, l := range tr {
			visited[l.Target] = true
		}

		assert.Len(t, visited, 8, "full trace does not span every peak")
		ends[[2]int{tr[0].Source, tr.Back().Target}] = true
	}

	assert.Equal(t, map[[2]int]bool{{0, 7}: true, {7, 0}: true}, ends)
}

func traceLengths(traces []m.Trace) []int {
	out := make([]int, len(traces))
	for i, tr := range traces {
		out[i] = len(tr)
	}

	return out
}

func TestTreeGrower_TraceProperties(t *testing.T) {
	positions := zigzagChain(10)
	limits := defaultGrowthLimits()

	result, err := NewTreeGrower(positions, limits, 3).Grow(context.Background(), bothWays(forwardLinks(10)))
	require.NoError(t, err)
	require.NotEmpty(t, result.Traces)
	assert.Positive(t, result.Rounds)
	assert.GreaterOrEqual(t, result.Created, len(result.Traces))

	for _, tr := range result.Traces {
		assert.GreaterOrEqual(t, len(tr), limits.MinTraceLength)

		for k := 1; k < len(tr); k++ {
			prev, cur := tr[k-1], tr[k]

			assert.Equal(t, prev.Target, cur.Source, "trace is not contiguous")
			assert.False(t, cur.Reversal(prev), "trace folds straight back")
			assert.GreaterOrEqual(t, distance(positions[prev.Source], positions[cur.Target]), limits.MinRefoldDistance)
		}
	}
}

func TestTreeGrower_WorkerCountDoesNotChangeResult(t *testing.T) {
	positions := zigzagChain(10)
	links := bothWays(forwardLinks(10))

	serial, err := NewTreeGrower(positions, defaultGrowthLimits(), 1).Grow(context.Background(), links)
	require.NoError(t, err)

	parallel, err := NewTreeGrower(positions, defaultGrowthLimits(), 6).Grow(context.Background(), links)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestTreeGrower_NoLinks(t *testing.T) {
	result, err := NewTreeGrower(nil, defaultGrowthLimits(), 1).Grow(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Traces)
	assert.Equal(t, 1, result.Rounds)
}

func TestTreeGrower_KeepsShortTracesWhenNothingElse(t *testing.T) {
	positions := straightChain(3)

	result, err := NewTreeGrower(positions, defaultGrowthLimits(), 1).Grow(context.Background(), forwardLinks(3))
	require.NoError(t, err)

	require.Len(t, result.Traces, 2)
	assert.Len(t, result.Traces[0], 2)
	assert.Len(t, result.Traces[1], 1)
}

func TestTreeGrower_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	links := forwardLinks(8)
	_, err := NewTreeGrower(straightChain(8), defaultGrowthLimits(), 1).Grow(ctx, links)
	require.ErrorIs(t, err, context.Canceled)
}

func TestForest_PruneMarksOutgrownProgenitors(t *testing.T) {
	links := forwardLinks(8)
	f := &forest{copied: make(map[int]struct{})}

	f.seed(links[0])
	for i := 1; i < 6; i++ {
		f.extend(i-1, links[i])
	}

	g := NewTreeGrower(straightChain(8), defaultGrowthLimits(), 1)
	g.prune(f, 0)

	require.Len(t, f.traces, 6)
	assert.Equal(t, 6, f.length(5))
	assert.True(t, f.traces[0].marked)

	for id := 1; id < 6; id++ {
		assert.False(t, f.traces[id].marked, "trace %d", id)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, f.traces[5].progenitors)
	assert.Equal(t, m.Trace(links[:6]), f.materialize(5))
}

func TestCanExtend(t *testing.T) {
	positions := []r3.Vec{
		{},
		{X: 3.8},
		{X: 4, Y: 6},
		{X: 0.5, Z: 1},
		{X: 3.8, Y: 0.5, Z: 1},
		{X: 3.8, Y: -4, Z: 1},
		{X: 4, Y: 3},
	}
	limits := defaultGrowthLimits()

	link := func(src, dst int) m.DirectedLink {
		return m.DirectedLink{Source: src, ScoredNode: m.ScoredNode{Target: dst}}
	}

	trace := m.Trace{link(0, 1), link(1, 2), link(2, 3)}

	tests := []struct {
		name string
		link m.DirectedLink
		want bool
	}{
		{"allowed", link(3, 5), true},
		{"not at the back", link(2, 5), false},
		{"straight back", link(3, 2), false},
		{"too tight a turn", link(3, 6), false},
		{"lies on an earlier link", link(3, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canExtend(positions, trace, tt.link, limits))
		})
	}

	t.Run("refold distance boundary", func(t *testing.T) {
		line := []r3.Vec{{}, {X: 3.8}, {X: 5}, {X: 4.999}, {X: 5.001}}
		back := m.Trace{link(0, 1)}

		cases := []struct {
			target int
			want   bool
		}{
			{target: 2, want: true},
			{target: 3, want: false},
			{target: 4, want: true},
		}

		for _, c := range cases {
			assert.Equal(t, c.want, canExtend(line, back, link(1, c.target), limits), "target %v", line[c.target])
		}
	})

	t.Run("already in trace", func(t *testing.T) {
		loop := m.Trace{link(0, 1), link(1, 2), link(2, 0)}
		assert.False(t, canExtend(positions, loop, link(0, 1), GrowthLimits{}))
	})
}

func TestDuplicatesGeometry(t *testing.T) {
	positions := []r3.Vec{
		{},
		{X: 3.8},
		{X: 3.5, Y: 0.5},
		{X: 0.4, Y: -0.5},
		{X: 10},
	}
	trace := m.Trace{{Source: 0, ScoredNode: m.ScoredNode{Target: 1}}}

	same := m.DirectedLink{Source: 3, ScoredNode: m.ScoredNode{Target: 2}}
	reversed := m.DirectedLink{Source: 2, ScoredNode: m.ScoredNode{Target: 3}}
	apart := m.DirectedLink{Source: 2, ScoredNode: m.ScoredNode{Target: 4}}

	assert.True(t, duplicatesGeometry(positions, trace, same, 3.0))
	assert.True(t, duplicatesGeometry(positions, trace, reversed, 3.0))
	assert.False(t, duplicatesGeometry(positions, trace, apart, 3.0))
}

func TestDuplicatesGeometry_Boundary(t *testing.T) {
	trace := m.Trace{{Source: 0, ScoredNode: m.ScoredNode{Target: 1}}}

	tests := []struct {
		name   string
		limit  float64
		offset float64
		want   bool
	}{
		{name: "at 3.0", limit: 3.0, offset: 3.0, want: false},
		{name: "inside 3.0", limit: 3.0, offset: 2.999, want: true},
		{name: "at 2.0", limit: 2.0, offset: 2.0, want: false},
		{name: "inside 2.0", limit: 2.0, offset: 1.999, want: true},
		{name: "outside 2.0", limit: 2.0, offset: 2.001, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Both candidate ends sit offset away from the matching trace ends.
			positions := []r3.Vec{{}, {X: 3.8}, {Y: tt.offset}, {X: 3.8, Y: tt.offset}}
			link := m.DirectedLink{Source: 2, ScoredNode: m.ScoredNode{Target: 3}}

			assert.Equal(t, tt.want, duplicatesGeometry(positions, trace, link, tt.limit))
		})
	}
}
