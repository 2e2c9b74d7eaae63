package domain

import (
	"context"
	"sort"

	m "github.com/mouse-blink/peptrace/internal/model"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

const noParent = -1

// traceNode is one immutable link of the trace arena. A trace is the path
// from its tail node back to a root.
type traceNode struct {
	link   m.DirectedLink
	parent int
	length int
}

type growingTrace struct {
	tail        int
	progenitors []int
	marked      bool
	// examined is set once the trace's candidates have been collected. The
	// trace never changes, so a second look cannot find anything new.
	examined bool
}

type addition struct {
	trace int
	link  int
}

// GrowthResult is the outcome of TreeGrower.Grow.
type GrowthResult struct {
	Traces []m.Trace
	Rounds int
	// Created counts every trace made before the final sweep.
	Created int
}

// TreeGrower assembles ranked links into traces by repeated copy and extend.
type TreeGrower struct {
	positions []r3.Vec
	limits    GrowthLimits
	workers   int
}

// NewTreeGrower creates a grower over the peak positions.
func NewTreeGrower(positions []r3.Vec, limits GrowthLimits, workers int) *TreeGrower {
	if workers < 1 {
		workers = 1
	}

	return &TreeGrower{positions: positions, limits: limits, workers: workers}
}

type forest struct {
	nodes     []traceNode
	traces    []growingTrace
	dontRetry []map[int]struct{}
	copied    map[int]struct{}
}

func (f *forest) addTrace(tail int, progenitors []int) {
	f.traces = append(f.traces, growingTrace{tail: tail, progenitors: progenitors})
	f.dontRetry = append(f.dontRetry, nil)
}

func (f *forest) seed(link m.DirectedLink) {
	f.nodes = append(f.nodes, traceNode{link: link, parent: noParent, length: 1})
	f.addTrace(len(f.nodes)-1, nil)
}

// extend copies the trace and appends link to the copy.
func (f *forest) extend(parent int, link m.DirectedLink) {
	src := f.traces[parent]
	f.nodes = append(f.nodes, traceNode{link: link, parent: src.tail, length: f.nodes[src.tail].length + 1})

	progenitors := make([]int, len(src.progenitors), len(src.progenitors)+1)
	copy(progenitors, src.progenitors)
	progenitors = append(progenitors, parent)

	f.addTrace(len(f.nodes)-1, progenitors)
	f.copied[parent] = struct{}{}
}

func (f *forest) length(id int) int {
	return f.nodes[f.traces[id].tail].length
}

// materialize returns the links of a trace from front to back.
func (f *forest) materialize(id int) m.Trace {
	tail := f.traces[id].tail
	out := make(m.Trace, f.nodes[tail].length)

	for n, i := tail, len(out)-1; n != noParent; n, i = f.nodes[n].parent, i-1 {
		out[i] = f.nodes[n].link
	}

	return out
}

// Grow builds traces from links, which must be ranked best first.
func (g *TreeGrower) Grow(ctx context.Context, links []m.DirectedLink) (GrowthResult, error) {
	f := &forest{copied: make(map[int]struct{})}
	offset := 0
	rounds := 0

	for {
		before := len(f.traces)

		additions, err := g.collectAdditions(ctx, f, links)
		if err != nil {
			return GrowthResult{}, err
		}

		for _, add := range additions {
			if f.dontRetry[add.trace] == nil {
				f.dontRetry[add.trace] = make(map[int]struct{})
			}

			f.dontRetry[add.trace][add.link] = struct{}{}
			f.extend(add.trace, links[add.link])
		}

		g.prune(f, before)

		if len(additions) == 0 && offset < len(links) {
			f.seed(links[offset])
			offset++
		}

		rounds++

		if len(f.traces) == before {
			break
		}
	}

	return GrowthResult{Traces: g.sweep(f), Rounds: rounds, Created: len(f.traces)}, nil
}

// collectAdditions finds, for every live trace not yet examined, the ranked
// links that may extend it. Workers only read the forest; the records are
// merged in trace order by the caller.
func (g *TreeGrower) collectAdditions(ctx context.Context, f *forest, links []m.DirectedLink) ([]addition, error) {
	var pending []int

	for id := range f.traces {
		if !f.traces[id].marked && !f.traces[id].examined {
			pending = append(pending, id)
		}
	}

	ranges := splitRanges(len(pending), g.workers)
	found := make([][]addition, len(ranges))

	eg, ctx := errgroup.WithContext(ctx)

	for w, rg := range ranges {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for _, id := range pending[rg.lo:rg.hi] {
				found[w] = append(found[w], g.extensionsOf(f, id, links)...)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []addition

	for _, part := range found {
		out = append(out, part...)
	}

	for _, id := range pending {
		f.traces[id].examined = true
	}

	return out, nil
}

func (g *TreeGrower) extensionsOf(f *forest, id int, links []m.DirectedLink) []addition {
	trace := f.materialize(id)
	retried := f.dontRetry[id]

	var out []addition

	for i, link := range links {
		if _, skip := retried[i]; skip {
			continue
		}

		if canExtend(g.positions, trace, link, g.limits) {
			out = append(out, addition{trace: id, link: i})
		}
	}

	return out
}

// prune marks progenitors that the traces made since start have outgrown.
func (g *TreeGrower) prune(f *forest, start int) {
	for id := start; id < len(f.traces); id++ {
		length := f.length(id)

		for _, p := range f.traces[id].progenitors {
			if f.length(p)+g.limits.ProgenitorMargin < length {
				f.traces[p].marked = true
			}
		}
	}
}

// sweep drops short, copied and marked traces and orders the rest longest
// first.
func (g *TreeGrower) sweep(f *forest) []m.Trace {
	drop := make(map[int]struct{})

	var short []int

	for id := range f.traces {
		if f.length(id) < g.limits.MinTraceLength {
			short = append(short, id)
		}
	}

	if len(short) < len(f.traces) {
		for _, id := range short {
			drop[id] = struct{}{}
		}
	}

	for id := range f.copied {
		drop[id] = struct{}{}
	}

	for id := range f.traces {
		if f.traces[id].marked {
			drop[id] = struct{}{}
		}
	}

	if len(drop) == len(f.traces) {
		return nil
	}

	keep := make([]int, 0, len(f.traces)-len(drop))

	for id := range f.traces {
		if _, ok := drop[id]; !ok {
			keep = append(keep, id)
		}
	}

	sort.SliceStable(keep, func(a, b int) bool {
		return f.length(keep[a]) > f.length(keep[b])
	})

	out := make([]m.Trace, len(keep))
	for i, id := range keep {
		out[i] = f.materialize(id)
	}

	return out
}
