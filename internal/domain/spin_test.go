package domain

import (
	"math"
	"testing"

	adaptermocks "github.com/mouse-blink/peptrace/internal/adapter/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSpinScorer_UniformDensity(t *testing.T) {
	density := adaptermocks.NewMockDensitySampler(t)
	density.EXPECT().MeanAndVariance().Return(3.0, 4.0)
	density.EXPECT().DensityAt(mock.Anything).Return(3.0)

	scorer, err := NewSpinScorer(straightChain(2), density)
	require.NoError(t, err)

	node, ok := scorer.Score(0, 1)
	require.True(t, ok)

	// The probe weights sum to -1.5 and the midpoint adds 1.6, with no dip.
	assert.InDelta(t, 0.1*3.0/2.0, node.SpinScore, 1e-12)
	assert.Equal(t, 0.0, node.Alpha)
	assert.Equal(t, 1, node.Target)
	assert.False(t, node.HasReverse)
}

func TestSpinScorer_FindsCarbonylAngle(t *testing.T) {
	positions := []r3.Vec{{X: 1, Y: 2, Z: 0.5}, {X: 3.5, Y: 4, Z: 2}}

	frame, ok := newLinkFrame(positions[0], positions[1])
	require.True(t, ok)

	wantAlpha := 2 * math.Pi * 10 / spinSteps
	carbonyl := frame.point(1.53, 1.89, 0, wantAlpha)

	scorer, err := NewSpinScorer(positions, blobDensity(0.5, carbonyl))
	require.NoError(t, err)

	node, ok := scorer.Score(0, 1)
	require.True(t, ok)

	assert.InDelta(t, wantAlpha, node.Alpha, 1e-12)
	assert.Greater(t, node.SpinScore, 1.0)
}

func TestSpinScorer_FlatMap(t *testing.T) {
	for _, variance := range []float64{0, -1, math.NaN()} {
		density := adaptermocks.NewMockDensitySampler(t)
		density.EXPECT().MeanAndVariance().Return(1.0, variance)

		_, err := NewSpinScorer(straightChain(2), density)
		require.ErrorIs(t, err, ErrFlatMap)
	}
}

func TestSpinScorer_DegenerateLink(t *testing.T) {
	scorer, err := NewSpinScorer([]r3.Vec{{X: 1}, {X: 1}}, uniformDensity(1))
	require.NoError(t, err)

	_, ok := scorer.Score(0, 1)
	assert.False(t, ok)
}
