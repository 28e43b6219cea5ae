package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

func TestAssessAccumulatesTropeWeights(t *testing.T) {
	r := NewRiskAssessor()
	risk := r.Assess(concept.Concept{
		Logline:  "The chosen one takes one last job",
		Synopsis: "A love triangle complicates everything.",
	}, domanalysis.SaturationLow)

	// chosen one 3 + one last job 3 + love triangle 3
	assert.Equal(t, 9, risk.RiskScore)
	assert.Equal(t, domanalysis.RiskHigh, risk.Tier)
	assert.ElementsMatch(t, []string{"chosen one", "one last job", "love triangle"}, risk.MatchedTropes)
}

func TestAssessScansLoglineAndSynopsisCaseInsensitively(t *testing.T) {
	r := NewRiskAssessor()
	risk := r.Assess(concept.Concept{
		Logline:  "A quiet beginning",
		Synopsis: "Then the ZOMBIE APOCALYPSE arrives.",
	}, domanalysis.SaturationLow)
	assert.Equal(t, 3, risk.RiskScore)
	assert.Equal(t, domanalysis.RiskModerate, risk.Tier)
}

func TestAssessSaturationPressure(t *testing.T) {
	r := NewRiskAssessor()
	clean := concept.Concept{Logline: "An original premise with no borrowed parts"}

	assert.Equal(t, domanalysis.RiskLow, r.Assess(clean, domanalysis.SaturationLow).Tier)
	assert.Equal(t, domanalysis.RiskModerate, r.Assess(clean, domanalysis.SaturationMedium).Tier)
	assert.Equal(t, domanalysis.RiskHigh, r.Assess(clean, domanalysis.SaturationHigh).Tier)

	// Medium saturation adds +2 to the raw score as well.
	assert.Equal(t, 2, r.Assess(clean, domanalysis.SaturationMedium).RiskScore)
}

func TestAssessCleanConceptHasEmptyTropeList(t *testing.T) {
	r := NewRiskAssessor()
	risk := r.Assess(concept.Concept{Logline: "Something genuinely new"}, domanalysis.SaturationLow)
	assert.Equal(t, 0, risk.RiskScore)
	assert.NotNil(t, risk.MatchedTropes)
	assert.Empty(t, risk.MatchedTropes)
}
