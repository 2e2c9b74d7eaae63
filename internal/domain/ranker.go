package domain

import (
	"context"
	"sort"

	m "github.com/mouse-blink/peptrace/internal/model"
	"golang.org/x/sync/errgroup"
)

// PairRanker spin scores both directions of every candidate pair.
type PairRanker struct {
	scorer  *SpinScorer
	workers int
}

// NewPairRanker creates a ranker running the given number of workers.
func NewPairRanker(scorer *SpinScorer, workers int) *PairRanker {
	if workers < 1 {
		workers = 1
	}

	return &PairRanker{scorer: scorer, workers: workers}
}

// Rank scores pairs in parallel and returns the topN directed links by
// descending spin score. Each link carries the score of its reverse.
// topN <= 0 keeps everything.
func (r *PairRanker) Rank(ctx context.Context, pairs []m.Pair, topN int) ([]m.DirectedLink, error) {
	links := make([]m.DirectedLink, 2*len(pairs))
	valid := make([]bool, len(pairs))

	g, ctx := errgroup.WithContext(ctx)

	for _, rg := range splitRanges(len(pairs), r.workers) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for k := rg.lo; k < rg.hi; k++ {
				valid[k] = r.scorePair(pairs[k], links[2*k:2*k+2])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := links[:0]

	for k := range pairs {
		if valid[k] {
			out = append(out, links[2*k], links[2*k+1])
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].SpinScore > out[b].SpinScore
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}

	return out, nil
}

// scorePair fills dst[0] with i->j and dst[1] with j->i.
func (r *PairRanker) scorePair(pair m.Pair, dst []m.DirectedLink) bool {
	forward, ok := r.scorer.Score(pair.I, pair.J)
	if !ok {
		return false
	}

	backward, ok := r.scorer.Score(pair.J, pair.I)
	if !ok {
		return false
	}

	forward.Reverse, forward.HasReverse = backward.SpinScore, true
	backward.Reverse, backward.HasReverse = forward.SpinScore, true

	dst[0] = m.DirectedLink{Source: pair.I, ScoredNode: forward}
	dst[1] = m.DirectedLink{Source: pair.J, ScoredNode: backward}

	return true
}
