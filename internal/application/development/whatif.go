package development

import (
	"context"
	"fmt"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

// ScenarioField names the single concept field a what-if scenario varies.
// Single-variable sensitivity analysis only; changing more than one field per
// scenario is out of scope.
type ScenarioField string

const (
	FieldGenre    ScenarioField = "genre"
	FieldFormat   ScenarioField = "format"
	FieldBudget   ScenarioField = "budget"
	FieldAudience ScenarioField = "audience"
)

// whatIfAlternatives is the fixed alternatives table per field.
var whatIfAlternatives = map[ScenarioField][]string{
	FieldGenre: {
		string(concept.GenreThriller), string(concept.GenreHorror),
		string(concept.GenreSciFi), string(concept.GenreDrama),
	},
	FieldFormat: {
		string(concept.FormatFeature), string(concept.FormatLimitedSeries),
		string(concept.FormatTVSeries),
	},
	FieldBudget: {
		string(concept.BudgetLow), string(concept.BudgetMedium),
		string(concept.BudgetHigh),
	},
	FieldAudience: {
		"Adults 25-54", "Young Adults 18-34", "Family", "Prestige / Awards",
	},
}

// WhatIfScenario is one single-variable re-scoring.
type WhatIfScenario struct {
	Field          ScenarioField `json:"field"`
	OriginalValue  string        `json:"originalValue"`
	AlternateValue string        `json:"alternateValue"`
	OriginalScore  int           `json:"originalScore"`
	AlternateScore int           `json:"alternateScore"`
	ScoreDelta     int           `json:"scoreDelta"`
	Pros           []string      `json:"pros"`
	Cons           []string      `json:"cons"`
	Recommendation string        `json:"recommendation"`
}

// currentValue reads the varied field off a concept.
func currentValue(c concept.Concept, field ScenarioField) string {
	switch field {
	case FieldGenre:
		return string(c.Genre)
	case FieldFormat:
		return string(c.Format)
	case FieldBudget:
		return string(c.BudgetTier)
	case FieldAudience:
		return c.TargetAudience
	}
	return ""
}

// applyValue returns a copy of the concept with the varied field replaced.
func applyValue(c concept.Concept, field ScenarioField, value string) concept.Concept {
	out := c
	switch field {
	case FieldGenre:
		out.Genre = concept.Genre(value)
	case FieldFormat:
		out.Format = concept.Format(value)
	case FieldBudget:
		out.BudgetTier = concept.BudgetTier(value)
	case FieldAudience:
		out.TargetAudience = value
	}
	return out
}

// scenarioNarrative fills the templated pros/cons/recommendation for a delta.
func scenarioNarrative(s *WhatIfScenario) {
	switch {
	case s.ScoreDelta >= 5:
		s.Pros = []string{
			fmt.Sprintf("Repositioning %s to %q lifts the score by %d points.", s.Field, s.AlternateValue, s.ScoreDelta),
			"The marketplace currently rewards this positioning.",
		}
		s.Cons = []string{"A repositioned draft needs its logline and synopsis rewritten to match."}
		s.Recommendation = fmt.Sprintf("Strongly consider moving %s to %q before taking the project out.", s.Field, s.AlternateValue)
	case s.ScoreDelta > 0:
		s.Pros = []string{fmt.Sprintf("A modest %d-point gain from changing %s.", s.ScoreDelta, s.Field)}
		s.Cons = []string{"The gain may not justify the rework cost."}
		s.Recommendation = fmt.Sprintf("Worth exploring %q in a parallel draft, not a pivot.", s.AlternateValue)
	case s.ScoreDelta == 0:
		s.Pros = []string{"No downside detected."}
		s.Cons = []string{fmt.Sprintf("Changing %s to %q moves nothing.", s.Field, s.AlternateValue)}
		s.Recommendation = "Keep the current positioning."
	default:
		s.Pros = []string{}
		s.Cons = []string{fmt.Sprintf("Changing %s to %q costs %d points.", s.Field, s.AlternateValue, -s.ScoreDelta)}
		s.Recommendation = fmt.Sprintf("Stay with %q.", s.OriginalValue)
	}
}

// WhatIf re-scores the concept once per alternative of the requested field,
// skipping the concept's current value.  Every scenario uses the same seed as
// the baseline so deltas isolate the field change, not jitter drift.
func (s *Service) WhatIf(ctx context.Context, c concept.Concept, field ScenarioField, opts appanalysis.Options) ([]WhatIfScenario, error) {
	alternatives, ok := whatIfAlternatives[field]
	if !ok {
		return nil, errors.New(errors.ErrCodeScenarioUnknown,
			fmt.Sprintf("no alternatives table for field %q", field))
	}

	baseline, err := s.analyzer.Analyze(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	original := currentValue(baseline.Concept, field)

	scenarios := []WhatIfScenario{}
	for _, alt := range alternatives {
		if alt == original {
			continue
		}
		modified := applyValue(baseline.Concept, field, alt)
		result, err := s.analyzer.Analyze(ctx, modified, opts)
		if err != nil {
			return nil, err
		}
		sc := WhatIfScenario{
			Field:          field,
			OriginalValue:  original,
			AlternateValue: alt,
			OriginalScore:  baseline.FinalScore,
			AlternateScore: result.FinalScore,
			ScoreDelta:     result.FinalScore - baseline.FinalScore,
		}
		scenarioNarrative(&sc)
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
