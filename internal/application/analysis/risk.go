package analysis

import (
	"strings"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// RiskAssessor flags overused tropes and saturation pressure into a
// similarity-risk tier.  Stateless and deterministic.
type RiskAssessor struct{}

// NewRiskAssessor constructs a RiskAssessor.
func NewRiskAssessor() *RiskAssessor { return &RiskAssessor{} }

// Assess scans logline and synopsis for trope phrases and combines the
// accumulated weight with the genre's saturation level.
func (r *RiskAssessor) Assess(c concept.Concept, saturation analysis.SaturationLevel) analysis.SimilarityRisk {
	text := strings.ToLower(c.Logline + " " + c.Synopsis)
	score := 0
	matched := []string{}
	for _, rule := range tropeRules {
		if strings.Contains(text, rule.Phrase) {
			score += rule.Weight
			matched = append(matched, rule.Phrase)
		}
	}
	switch saturation {
	case analysis.SaturationHigh:
		score += 4
	case analysis.SaturationMedium:
		score += 2
	}
	return analysis.NewSimilarityRisk(score, saturation, matched)
}
