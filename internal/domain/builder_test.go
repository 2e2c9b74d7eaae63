package domain

import (
	"bytes"
	"log/slog"
	"testing"

	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func atomNames(res m.Residue) []string {
	names := make([]string, 0, len(res.Atoms))
	for _, a := range res.Atoms {
		names = append(names, a.Name)
	}

	return names
}

func TestChainBuilder_Build(t *testing.T) {
	positions := zigzagChain(8)
	trace := m.Trace(forwardLinks(8))

	frag, err := NewChainBuilder(positions, nil, nil).Build(m.NewScoredTrace(0, trace))
	require.NoError(t, err)

	assert.Equal(t, "A", frag.ID)
	require.Len(t, frag.Residues, 7)

	for i, res := range frag.Residues {
		assert.Equal(t, i+1, res.SeqNum)
		assert.Equal(t, m.DefaultResidueName, res.Name)
		assert.Equal(t, []string{m.AtomN, m.AtomCA, m.AtomC, m.AtomO, m.AtomCB}, atomNames(res), "residue %d", res.SeqNum)

		ca, _ := res.Atom(m.AtomCA)
		assert.Equal(t, positions[i], ca.Position)

		cb, _ := res.Atom(m.AtomCB)
		assert.InDelta(t, 1.53, distance(ca.Position, cb.Position), 0.1, "CA-CB of residue %d", res.SeqNum)
	}

	first := frag.Residues[0]
	n, _ := first.Atom(m.AtomN)
	ca, _ := first.Atom(m.AtomCA)
	assert.InDelta(t, inventedBond, distance(n.Position, ca.Position), 1e-9)
}

func TestChainBuilder_SpinsInventedAtomsIntoDensity(t *testing.T) {
	positions := zigzagChain(5)
	trace := m.Trace(forwardLinks(5))

	plain, err := NewChainBuilder(positions, nil, nil).Build(m.NewScoredTrace(0, trace))
	require.NoError(t, err)

	n0, _ := plain.Residues[0].Atom(m.AtomN)
	ca0, _ := plain.Residues[0].Atom(m.AtomCA)
	c0, _ := plain.Residues[0].Atom(m.AtomC)

	target := rotateAround(n0.Position, ca0.Position, r3.Sub(ca0.Position, c0.Position), radians(90))

	spun, err := NewChainBuilder(positions, blobDensity(0.3, target), nil).Build(m.NewScoredTrace(0, trace))
	require.NoError(t, err)

	n, _ := spun.Residues[0].Atom(m.AtomN)
	assert.InDelta(t, 0, distance(n.Position, target), 1e-6)
}

func TestChainBuilder_DegenerateLink(t *testing.T) {
	positions := []r3.Vec{{X: 1}, {X: 1}, {X: 4.81}}
	trace := m.Trace{{Source: 0, ScoredNode: m.ScoredNode{Target: 1}}}

	_, err := NewChainBuilder(positions, nil, nil).Build(m.NewScoredTrace(0, trace))
	require.ErrorIs(t, err, ErrDegenerateLink)

	_, err = NewChainBuilder(positions, nil, nil).Build(m.NewScoredTrace(1, nil))
	require.Error(t, err)
}

func TestChainBuilder_BuildModel(t *testing.T) {
	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, nil))
	positions := append(zigzagChain(6), r3.Vec{Y: 40}, r3.Vec{Y: 40})

	traces := []m.ScoredTrace{
		m.NewScoredTrace(0, forwardLinks(6)),
		m.NewScoredTrace(1, m.Trace{{Source: 6, ScoredNode: m.ScoredNode{Target: 7}}}),
		m.NewScoredTrace(2, forwardLinks(4)),
	}

	builder := NewChainBuilder(positions, nil, logger)

	model := builder.BuildModel(traces, 0)
	require.Len(t, model.Fragments, 2)
	assert.Equal(t, "A", model.Fragments[0].ID)
	assert.Equal(t, "C", model.Fragments[1].ID)
	assert.Contains(t, logs.String(), "chain omitted")

	limited := builder.BuildModel(traces, 1)
	require.Len(t, limited.Fragments, 1)
	assert.Equal(t, "A", limited.Fragments[0].ID)
}

func TestIdealCB_MissingAtoms(t *testing.T) {
	res := m.Residue{SeqNum: 4}
	res.SetAtom(m.AtomCA, r3.Vec{})
	res.SetAtom(m.AtomC, r3.Vec{X: 1.5})

	_, missing := idealCB(res)
	assert.Equal(t, m.AtomN, missing)
}
