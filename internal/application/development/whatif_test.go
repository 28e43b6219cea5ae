package development

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

func TestWhatIfSkipsCurrentValueAndIsolatesTheField(t *testing.T) {
	svc := newTestService(newMockRepo(), nil)
	opts := appanalysis.WithSeed(8)

	scenarios, err := svc.WhatIf(context.Background(), dramaConcept(), FieldGenre, opts)
	require.NoError(t, err)
	// Genre table holds four alternatives; Drama is the current value.
	require.Len(t, scenarios, 3)

	for _, s := range scenarios {
		assert.Equal(t, FieldGenre, s.Field)
		assert.Equal(t, string(concept.GenreDrama), s.OriginalValue)
		assert.NotEqual(t, s.OriginalValue, s.AlternateValue)
		assert.Equal(t, s.AlternateScore-s.OriginalScore, s.ScoreDelta)
		assert.NotEmpty(t, s.Recommendation)
	}

	// All scenarios share one baseline score.
	for _, s := range scenarios[1:] {
		assert.Equal(t, scenarios[0].OriginalScore, s.OriginalScore)
	}
}

func TestWhatIfBudgetUsesAllAlternativesWhenFieldIsUndeclared(t *testing.T) {
	svc := newTestService(newMockRepo(), nil)
	scenarios, err := svc.WhatIf(context.Background(), dramaConcept(), FieldBudget, appanalysis.WithSeed(8))
	require.NoError(t, err)
	assert.Len(t, scenarios, 3)
}

func TestWhatIfIsDeterministicPerSeed(t *testing.T) {
	svc := newTestService(newMockRepo(), nil)
	ctx := context.Background()

	first, err := svc.WhatIf(ctx, dramaConcept(), FieldFormat, appanalysis.WithSeed(8))
	require.NoError(t, err)
	again, err := svc.WhatIf(ctx, dramaConcept(), FieldFormat, appanalysis.WithSeed(8))
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestWhatIfUnknownFieldErrors(t *testing.T) {
	svc := newTestService(newMockRepo(), nil)
	_, err := svc.WhatIf(context.Background(), dramaConcept(), ScenarioField("director"), appanalysis.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeScenarioUnknown))
}

func TestScenarioNarrativeTracksDeltaBands(t *testing.T) {
	s := WhatIfScenario{Field: FieldGenre, AlternateValue: "Thriller", ScoreDelta: 6}
	scenarioNarrative(&s)
	assert.Contains(t, s.Recommendation, "Strongly consider")

	s = WhatIfScenario{Field: FieldGenre, AlternateValue: "Thriller", ScoreDelta: 2}
	scenarioNarrative(&s)
	assert.Contains(t, s.Recommendation, "parallel draft")

	s = WhatIfScenario{Field: FieldGenre, AlternateValue: "Thriller", ScoreDelta: 0}
	scenarioNarrative(&s)
	assert.Equal(t, "Keep the current positioning.", s.Recommendation)

	s = WhatIfScenario{Field: FieldGenre, OriginalValue: "Drama", AlternateValue: "Thriller", ScoreDelta: -4}
	scenarioNarrative(&s)
	assert.Contains(t, s.Recommendation, `"Drama"`)
	assert.Empty(t, s.Pros)
}
