package analysis

import (
	"strings"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// SynopsisEvaluator scores the softer packaging components of the final
// formula: synopsis depth, format/genre synergy, declared advanced options,
// and comparable titles.  Stateless and deterministic.
type SynopsisEvaluator struct{}

// NewSynopsisEvaluator constructs a SynopsisEvaluator.
func NewSynopsisEvaluator() *SynopsisEvaluator { return &SynopsisEvaluator{} }

func countTermHits(lower string, terms []string) int {
	hits := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			hits++
		}
	}
	return hits
}

// SynopsisQuality scores the synopsis 0-10: a word-count base plus structure,
// character-arc, and theme keyword bonuses.  An empty synopsis scores 0.
func (e *SynopsisEvaluator) SynopsisQuality(synopsis string) float64 {
	words := wordCount(synopsis)
	if words == 0 {
		return 0
	}
	var base float64
	switch {
	case words >= 150:
		base = 5
	case words >= 75:
		base = 4
	case words >= 30:
		base = 3
	default:
		base = 1
	}
	lower := strings.ToLower(synopsis)
	if countTermHits(lower, synopsisStructureTerms) >= 2 {
		base += 2
	}
	if countTermHits(lower, synopsisCharacterArcTerms) >= 1 {
		base += 2
	}
	if countTermHits(lower, synopsisThemeTerms) >= 1 {
		base += 1
	}
	if base > 10 {
		base = 10
	}
	return base
}

// FormatFit scores format/genre packaging 0-8: a base of 4, +4 for a pairing
// in the synergy table, and series-structure bonuses (+2 for a series concept
// in a genre with an episodic engine, +1 when the synopsis describes series
// shape).
func (e *SynopsisEvaluator) FormatFit(c concept.Concept) float64 {
	fit := 4.0
	for _, g := range formatSynergy[c.Format] {
		if g == c.Genre {
			fit += 4
			break
		}
	}
	if c.Format.IsSeries() {
		if seriesEngineGenres[c.Genre] {
			fit += 2
		}
		if countTermHits(strings.ToLower(c.Synopsis), seriesShapeTerms) > 0 {
			fit += 1
		}
	}
	if fit > 8 {
		fit = 8
	}
	return fit
}

// AdvancedOptions scores declared positioning metadata 0-10.  Each declared
// field earns a fixed credit; a prestige-corridor target audience earns an
// extra 1.5.
func (e *SynopsisEvaluator) AdvancedOptions(c concept.Concept) float64 {
	bonus := 0.0
	if c.HasSecondaryGenre() {
		bonus += 2
	}
	if c.HasTone() {
		bonus += 1.5
	}
	audience := strings.ToLower(strings.TrimSpace(c.TargetAudience))
	if audience != "" {
		bonus += 1.5
	}
	if strings.TrimSpace(string(c.BudgetTier)) != "" {
		bonus += 1.5
	}
	if strings.TrimSpace(c.SettingPeriod) != "" {
		bonus += 1
	}
	if strings.TrimSpace(c.ProtagonistType) != "" {
		bonus += 1
	}
	if countTermHits(audience, prestigeAudienceTerms) > 0 {
		bonus += 1.5
	}
	if bonus > 10 {
		bonus = 10
	}
	return bonus
}

// ComparablesBonus credits declared comparable titles +2/+2/+1, max 5.
func (e *SynopsisEvaluator) ComparablesBonus(c concept.Concept) float64 {
	weights := []float64{2, 2, 1}
	bonus := 0.0
	for i, title := range c.ComparableTitles {
		if i >= len(weights) {
			break
		}
		if strings.TrimSpace(title) != "" {
			bonus += weights[i]
		}
	}
	return bonus
}
