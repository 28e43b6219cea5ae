package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

func TestVerdictBandsCoverClampRangeExactly(t *testing.T) {
	bands := VerdictBands()
	require.Len(t, bands, 5)

	// Highest band first, contiguous, no overlap, no gap.
	assert.Equal(t, MaxFinalScore, bands[0].MaxScore)
	assert.Equal(t, MinFinalScore, bands[len(bands)-1].MinScore)
	for i := 1; i < len(bands); i++ {
		assert.Equal(t, bands[i].MaxScore+1, bands[i-1].MinScore,
			"band %q must start where band %q ends", bands[i-1].Verdict, bands[i].Verdict)
	}
}

func TestVerdictForScoreEveryScoreHasExactlyOneBand(t *testing.T) {
	for score := MinFinalScore; score <= MaxFinalScore; score++ {
		band, err := VerdictForScore(score)
		require.NoError(t, err, "score %d", score)
		assert.GreaterOrEqual(t, score, band.MinScore)
		assert.LessOrEqual(t, score, band.MaxScore)

		covering := 0
		for _, b := range VerdictBands() {
			if score >= b.MinScore && score <= b.MaxScore {
				covering++
			}
		}
		assert.Equal(t, 1, covering, "score %d covered by %d bands", score, covering)
	}
}

func TestVerdictForScoreBandEdges(t *testing.T) {
	cases := []struct {
		score int
		want  Verdict
	}{
		{98, VerdictStudioPriority},
		{90, VerdictStudioPriority},
		{89, VerdictStrongGreenlight},
		{80, VerdictStrongGreenlight},
		{79, VerdictActiveDev},
		{70, VerdictActiveDev},
		{69, VerdictDevelopmentPass},
		{55, VerdictDevelopmentPass},
		{54, VerdictBackToDev},
		{25, VerdictBackToDev},
	}
	for _, tc := range cases {
		band, err := VerdictForScore(tc.score)
		require.NoError(t, err)
		assert.Equal(t, tc.want, band.Verdict, "score %d", tc.score)
	}
}

func TestVerdictForScoreOutOfRangePanicsInDebugMode(t *testing.T) {
	assert.Panics(t, func() { VerdictForScore(MinFinalScore - 1) }) //nolint:errcheck
	assert.Panics(t, func() { VerdictForScore(MaxFinalScore + 1) }) //nolint:errcheck
}

func TestVerdictForScoreOutOfRangeErrorsInReleaseMode(t *testing.T) {
	errors.SetDebugMode(false)
	defer errors.SetDebugMode(true)

	_, err := VerdictForScore(99)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvariantViolation))
}
