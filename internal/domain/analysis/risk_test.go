package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForRisk(t *testing.T) {
	cases := []struct {
		score      int
		saturation SaturationLevel
		want       RiskTier
	}{
		{0, SaturationLow, RiskLow},
		{2, SaturationLow, RiskLow},
		{3, SaturationLow, RiskModerate},
		{5, SaturationLow, RiskModerate},
		{6, SaturationLow, RiskHigh},
		{0, SaturationMedium, RiskModerate},
		{0, SaturationHigh, RiskHigh},
		{10, SaturationMedium, RiskHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForRisk(tc.score, tc.saturation),
			"score=%d saturation=%s", tc.score, tc.saturation)
	}
}

func TestNewSimilarityRiskFillsPresentation(t *testing.T) {
	r := NewSimilarityRisk(7, SaturationLow, []string{"chosen one", "time travel"})
	assert.Equal(t, RiskHigh, r.Tier)
	assert.Equal(t, 7, r.RiskScore)
	assert.NotEmpty(t, r.Color)
	assert.NotEmpty(t, r.Description)
	assert.Equal(t, []string{"chosen one", "time travel"}, r.MatchedTropes)
}

func TestNewSimilarityRiskNilTropesBecomesEmptySlice(t *testing.T) {
	r := NewSimilarityRisk(0, SaturationLow, nil)
	assert.NotNil(t, r.MatchedTropes)
	assert.Empty(t, r.MatchedTropes)
}
