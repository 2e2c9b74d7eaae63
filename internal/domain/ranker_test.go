package domain

import (
	"context"
	"testing"

	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRanker(t *testing.T, workers int) (*PairRanker, []m.Pair) {
	t.Helper()

	positions := zigzagChain(9)
	scorer, err := NewSpinScorer(positions, blobDensity(1.2, positions...))
	require.NoError(t, err)

	pairs := FindPeptideContacts(positions, 3.81, 0.4)
	require.Len(t, pairs, 8)

	return NewPairRanker(scorer, workers), pairs
}

func TestPairRanker_Reciprocity(t *testing.T) {
	ranker, pairs := newTestRanker(t, 3)

	links, err := ranker.Rank(context.Background(), pairs, 0)
	require.NoError(t, err)
	require.Len(t, links, 2*len(pairs))

	byDirection := make(map[[2]int]m.DirectedLink)
	for _, l := range links {
		byDirection[[2]int{l.Source, l.Target}] = l
	}

	for _, l := range links {
		rev, ok := byDirection[[2]int{l.Target, l.Source}]
		require.True(t, ok, "missing reverse of %d->%d", l.Source, l.Target)

		assert.True(t, l.HasReverse)
		assert.Equal(t, rev.SpinScore, l.Reverse)
		assert.Equal(t, l.SpinScore, rev.Reverse)
	}
}

func TestPairRanker_SortedAndTruncated(t *testing.T) {
	ranker, pairs := newTestRanker(t, 2)

	all, err := ranker.Rank(context.Background(), pairs, 0)
	require.NoError(t, err)

	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].SpinScore, all[i].SpinScore)
	}

	top, err := ranker.Rank(context.Background(), pairs, 5)
	require.NoError(t, err)
	assert.Equal(t, all[:5], top)
}

func TestPairRanker_WorkerCountDoesNotChangeResult(t *testing.T) {
	serial, pairs := newTestRanker(t, 1)
	parallel, _ := newTestRanker(t, 8)

	want, err := serial.Rank(context.Background(), pairs, 0)
	require.NoError(t, err)

	got, err := parallel.Rank(context.Background(), pairs, 0)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestPairRanker_Cancelled(t *testing.T) {
	ranker, pairs := newTestRanker(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ranker.Rank(ctx, pairs, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSplitRanges(t *testing.T) {
	tests := []struct {
		n, parts int
		want     []span
	}{
		{0, 4, nil},
		{3, 0, []span{{0, 3}}},
		{3, 5, []span{{0, 1}, {1, 2}, {2, 3}}},
		{10, 3, []span{{0, 4}, {4, 7}, {7, 10}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitRanges(tt.n, tt.parts), "n=%d parts=%d", tt.n, tt.parts)
	}
}
