package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const inputYAML = `
peaks:
  - [0, 0, 0]
  - [3.81, 0, 0]
map:
  origin: [-2, -2, -2]
  spacing: [1, 1, 1]
  dims: [2, 1, 1]
  values: [0.5, 1.5]
cell: {a: 50, b: 60, c: 70, alpha: 90, beta: 90, gamma: 90}
symops: ["x,y,z", "-x,y+1/2,-z"]
`

func TestInputStoreLoadsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte(inputYAML), 0o600))

	input, err := NewInputStore().LoadInput(m.Path(path))
	require.NoError(t, err)

	require.Len(t, input.Peaks, 2)
	assert.Equal(t, r3.Vec{X: 3.81}, input.Peaks[1])
	assert.Equal(t, [3]int{2, 1, 1}, input.Map.Dims)
	assert.Equal(t, r3.Vec{X: -2, Y: -2, Z: -2}, input.Map.Origin)
	require.NotNil(t, input.Cell)
	assert.InDelta(t, 60.0, input.Cell.B, 1e-12)
	require.Len(t, input.Symops, 2)
	assert.InDelta(t, 0.5, input.Symops[1].Trans.Y, 1e-12)
	assert.Equal(t, m.Path(path), input.Source)
}

func TestInputStoreErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewInputStore().LoadInput(m.Path(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("symops: [\"x,y\"]\n"), 0o600))

	_, err = NewInputStore().LoadInput(m.Path(bad))
	require.ErrorIs(t, err, m.ErrInvalidSymop)
}

func sampleReport() m.Report {
	return m.Report{
		RunID:     "6f1d3a8e-0000-4000-8000-000000000000",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Source:    "in.yaml",
		Peaks:     12,
		Chains:    []m.ChainSummary{{ID: "A", Residues: 1, Score: 4.5}},
		Model: m.Model{Fragments: []m.Fragment{{
			ID: "A",
			Residues: []m.Residue{{
				SeqNum: 1,
				Name:   "ALA",
				Atoms:  []m.Atom{{Name: "CA", Position: r3.Vec{X: 1, Y: 2, Z: 3}}},
			}},
		}}},
	}
}

func TestModelStoreRoundTrip(t *testing.T) {
	store := NewModelStore()
	dir := filepath.Join(t.TempDir(), "out")

	path, err := store.SaveReport(m.Path(dir), sampleReport())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(path), ".yaml"))
	assert.Len(t, filepath.Base(string(path)), len("0123456789abcdef.yaml"))

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)

	want := sampleReport()
	assert.True(t, want.CreatedAt.Equal(loaded.CreatedAt))

	loaded.CreatedAt = want.CreatedAt
	assert.Equal(t, want, loaded)
}

func TestModelStoreNameFollowsContent(t *testing.T) {
	store := NewModelStore()
	dir := m.Path(t.TempDir())

	first, err := store.SaveReport(dir, sampleReport())
	require.NoError(t, err)

	again, err := store.SaveReport(dir, sampleReport())
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other := sampleReport()
	other.RunID = "another"

	second, err := store.SaveReport(dir, other)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestContentHashIsStable(t *testing.T) {
	a, err := contentHash([]byte("peptide"))
	require.NoError(t, err)

	b, err := contentHash([]byte("peptide"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestNoopCollaborators(t *testing.T) {
	residues := []m.Residue{{SeqNum: 1, Name: "ALA"}}

	out, err := NewNoopRefiner().Refine(context.Background(), residues, nil, 60)
	require.NoError(t, err)
	assert.Equal(t, residues, out)

	seq, err := NewNoopSequenceAssigner().AssignSequence(context.Background(), m.Fragment{}, nil)
	require.NoError(t, err)
	assert.Empty(t, seq)

	assert.Equal(t, "TRP", ResidueName('W'))
	assert.Equal(t, "UNK", ResidueName('X'))
}
