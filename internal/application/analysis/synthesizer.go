package analysis

import (
	"math"
	"math/rand"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// ScoreSynthesizer combines the pipeline components into the single clamped
// final score and its verdict.
type ScoreSynthesizer struct {
	evaluator *SynopsisEvaluator
}

// NewScoreSynthesizer constructs a ScoreSynthesizer.
func NewScoreSynthesizer(evaluator *SynopsisEvaluator) *ScoreSynthesizer {
	return &ScoreSynthesizer{evaluator: evaluator}
}

// Synthesize computes the final score.  Term order is part of the contract:
//
//	score = loglineTotal × 0.5    (up to 50)
//	      + genreBonus            (−10..15)
//	      + synopsisQuality       (0..10)
//	      + formatFit             (0..8)
//	      + advancedOptions       (0..10)
//	      + comparablesBonus      (0..5)
//	      + jitter                (−2..2)
//
// rounded to the nearest integer and hard-clamped to [25, 98].
func (s *ScoreSynthesizer) Synthesize(c concept.Concept, loglineTotal, genreBonus int, rng *rand.Rand) (int, analysis.VerdictBand, error) {
	score := float64(loglineTotal) * 0.5
	score += float64(genreBonus)
	score += s.evaluator.SynopsisQuality(c.Synopsis)
	score += s.evaluator.FormatFit(c)
	score += s.evaluator.AdvancedOptions(c)
	score += s.evaluator.ComparablesBonus(c)
	score += float64(jitter(rng))

	final := clampInt(int(math.Round(score)), analysis.MinFinalScore, analysis.MaxFinalScore)
	band, err := analysis.VerdictForScore(final)
	if err != nil {
		return 0, analysis.VerdictBand{}, err
	}
	return final, band, nil
}
