// Package analysis defines the value objects produced by the scoring
// pipeline: the logline breakdown, the genre market analysis, verdict and
// risk tiers, catalog match records, feedback items, and the aggregate
// AnalysisResult snapshot.  Everything here is immutable once constructed;
// the application layer builds these, it never mutates them afterwards.
package analysis

import (
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

// Per-dimension score ceilings.  Each sub-score is clamped to its own maximum
// before summation; the total is a structural sum and is not re-clamped.
const (
	MaxProtagonistScore  = 15
	MaxConflictScore     = 20
	MaxStakesScore       = 15
	MaxUniqueHookScore   = 20
	MaxGenreClarityScore = 10
	MaxConcisionScore    = 10
	MaxEmotionalScore    = 10
	MaxTotalLoglineScore = 100
)

// Dimension names a logline scoring dimension.  Used as the key of the
// diagnostic notes map and in feedback threshold tables.
type Dimension string

const (
	DimProtagonist  Dimension = "protagonist"
	DimConflict     Dimension = "conflict"
	DimStakes       Dimension = "stakes"
	DimUniqueHook   Dimension = "uniqueHook"
	DimGenreClarity Dimension = "genreClarity"
	DimConcision    Dimension = "concision"
	DimEmotional    Dimension = "emotionalResonance"
)

// AllDimensions lists the seven dimensions in scoring order.
var AllDimensions = []Dimension{
	DimProtagonist, DimConflict, DimStakes, DimUniqueHook,
	DimGenreClarity, DimConcision, DimEmotional,
}

// LoglineScoreBreakdown decomposes a logline into seven bounded sub-scores
// plus their structural sum and a diagnostic note per dimension.
type LoglineScoreBreakdown struct {
	Protagonist        int `json:"protagonist"`
	Conflict           int `json:"conflict"`
	Stakes             int `json:"stakes"`
	UniqueHook         int `json:"uniqueHook"`
	GenreClarity       int `json:"genreClarity"`
	Concision          int `json:"concision"`
	EmotionalResonance int `json:"emotionalResonance"`

	// TotalLoglineScore is the sum of the seven clamped sub-scores.
	// Structural: max theoretical 100, never independently re-clamped.
	TotalLoglineScore int `json:"totalLoglineScore"`

	// Notes holds one human-readable diagnostic per dimension.
	Notes map[Dimension]string `json:"notes"`
}

// Score returns the sub-score for a dimension.
func (b LoglineScoreBreakdown) Score(d Dimension) int {
	switch d {
	case DimProtagonist:
		return b.Protagonist
	case DimConflict:
		return b.Conflict
	case DimStakes:
		return b.Stakes
	case DimUniqueHook:
		return b.UniqueHook
	case DimGenreClarity:
		return b.GenreClarity
	case DimConcision:
		return b.Concision
	case DimEmotional:
		return b.EmotionalResonance
	}
	return 0
}

// MaxFor returns the ceiling for a dimension.
func MaxFor(d Dimension) int {
	switch d {
	case DimProtagonist:
		return MaxProtagonistScore
	case DimConflict:
		return MaxConflictScore
	case DimStakes:
		return MaxStakesScore
	case DimUniqueHook:
		return MaxUniqueHookScore
	case DimGenreClarity:
		return MaxGenreClarityScore
	case DimConcision:
		return MaxConcisionScore
	case DimEmotional:
		return MaxEmotionalScore
	}
	return 0
}

// Validate checks the breakdown's structural invariants: every sub-score in
// [0, max] and the total equal to the sum of the seven.  A violation is a
// programming error in the analyzer, reported loudly via errors.Invariant.
func (b LoglineScoreBreakdown) Validate() error {
	sum := 0
	for _, d := range AllDimensions {
		s := b.Score(d)
		if s < 0 || s > MaxFor(d) {
			return errors.Invariantf("logline sub-score %s=%d outside [0,%d]", d, s, MaxFor(d))
		}
		sum += s
	}
	if sum != b.TotalLoglineScore {
		return errors.Invariantf("totalLoglineScore %d != sum of sub-scores %d", b.TotalLoglineScore, sum)
	}
	return nil
}
