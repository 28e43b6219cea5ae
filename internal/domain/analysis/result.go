package analysis

import (
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// AnalysisResult is the complete output of one analysis call: the normalized
// concept that was scored, every intermediate component, and the final
// clamped score with its verdict.  Results are immutable snapshots; re-running
// the same concept with the same seed produces an identical result apart from
// ID and timestamp.
type AnalysisResult struct {
	ID        common.ID        `json:"id"`
	Timestamp common.Timestamp `json:"timestamp"`

	Concept concept.Concept `json:"concept"`

	Logline    LoglineScoreBreakdown `json:"loglineBreakdown"`
	Market     GenreMarketAnalysis   `json:"marketAnalysis"`
	FinalScore int                   `json:"overallScore"`
	Verdict    VerdictBand           `json:"verdict"`
	Risk       SimilarityRisk        `json:"similarityRisk"`

	BuyerMatches     []BuyerMatch      `json:"buyerMatches"`
	ProducerMatches  []ProducerMatch   `json:"producerMatches"`
	ComparableTitles []ComparableTitle `json:"comparableTitles"`

	Feedback     []FeedbackItem    `json:"feedback"`
	Strengths    []StrengthPoint   `json:"strengths"`
	Improvements []ImprovementArea `json:"improvements"`

	// MarketInsights are reader-facing observations derived from the Market
	// component: growth, saturation, streaming demand, ROI, and any fallback.
	MarketInsights []string `json:"marketInsights"`
}

// Validate checks the cross-component invariants a finished result must hold:
// final score in clamp range, verdict band covering the score, match lists
// sorted descending within their clamp ranges and bounded at MaxMatches,
// feedback sorted by priority ascending, improvements by impact descending.
// Any violation is a defect in the synthesizer, not caller input.
func (r AnalysisResult) Validate() error {
	if err := r.Logline.Validate(); err != nil {
		return err
	}
	if r.FinalScore < MinFinalScore || r.FinalScore > MaxFinalScore {
		return errors.Invariantf("overallScore %d outside [%d,%d]", r.FinalScore, MinFinalScore, MaxFinalScore)
	}
	if r.FinalScore < r.Verdict.MinScore || r.FinalScore > r.Verdict.MaxScore {
		return errors.Invariantf("verdict %q does not cover score %d", r.Verdict.Verdict, r.FinalScore)
	}
	if r.Market.GenreBonus < MinGenreBonus || r.Market.GenreBonus > MaxGenreBonus {
		return errors.Invariantf("genreBonus %d outside [%d,%d]", r.Market.GenreBonus, MinGenreBonus, MaxGenreBonus)
	}

	if len(r.BuyerMatches) > MaxMatches {
		return errors.Invariantf("buyer matches %d exceed %d", len(r.BuyerMatches), MaxMatches)
	}
	for i, m := range r.BuyerMatches {
		if m.MatchScore < BuyerMatchThreshold || m.MatchScore > MaxBuyerMatchScore {
			return errors.Invariantf("buyer match %q score %d outside [%d,%d]", m.Name, m.MatchScore, BuyerMatchThreshold, MaxBuyerMatchScore)
		}
		if i > 0 && m.MatchScore > r.BuyerMatches[i-1].MatchScore {
			return errors.New(errors.ErrCodeMatchListUnsorted, "buyer matches not sorted descending")
		}
	}

	if len(r.ProducerMatches) > MaxMatches {
		return errors.Invariantf("producer matches %d exceed %d", len(r.ProducerMatches), MaxMatches)
	}
	for i, m := range r.ProducerMatches {
		if m.MatchScore < BuyerMatchThreshold || m.MatchScore > MaxBuyerMatchScore {
			return errors.Invariantf("producer match %q score %d outside [%d,%d]", m.Name, m.MatchScore, BuyerMatchThreshold, MaxBuyerMatchScore)
		}
		if i > 0 && m.MatchScore > r.ProducerMatches[i-1].MatchScore {
			return errors.New(errors.ErrCodeMatchListUnsorted, "producer matches not sorted descending")
		}
	}

	if len(r.ComparableTitles) > MaxMatches {
		return errors.Invariantf("comparable titles %d exceed %d", len(r.ComparableTitles), MaxMatches)
	}
	for i, m := range r.ComparableTitles {
		if m.MatchScore < MinComparableMatchScore || m.MatchScore > MaxComparableMatchScore {
			return errors.Invariantf("comparable %q score %d outside [%d,%d]", m.Title, m.MatchScore, MinComparableMatchScore, MaxComparableMatchScore)
		}
		if i > 0 && m.MatchScore > r.ComparableTitles[i-1].MatchScore {
			return errors.New(errors.ErrCodeMatchListUnsorted, "comparable titles not sorted descending")
		}
	}

	for i, f := range r.Feedback {
		if f.Priority < 1 || f.Priority > 5 {
			return errors.Invariantf("feedback priority %d outside [1,5]", f.Priority)
		}
		if i > 0 && f.Priority < r.Feedback[i-1].Priority {
			return errors.Invariantf("feedback not sorted by priority ascending")
		}
	}
	for i, imp := range r.Improvements {
		if imp.Impact < 1 || imp.Impact > 10 {
			return errors.Invariantf("improvement impact %d outside [1,10]", imp.Impact)
		}
		if i > 0 && imp.Impact > r.Improvements[i-1].Impact {
			return errors.Invariantf("improvements not sorted by impact descending")
		}
	}
	return nil
}
