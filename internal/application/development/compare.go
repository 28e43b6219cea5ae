package development

import (
	"context"
	"fmt"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// tieMargin is the score difference at or below which a comparison is a tie.
const tieMargin = 3

// Side labels a comparison outcome.
type Side string

const (
	SideA   Side = "A"
	SideB   Side = "B"
	SideTie Side = "Tie"
)

// ComparisonDimension is one of the six fixed comparison axes, each resolved
// independently to A, B, or Tie.
type ComparisonDimension struct {
	Name   string `json:"name"`
	ValueA string `json:"valueA"`
	ValueB string `json:"valueB"`
	Winner Side   `json:"winner"`
}

// ABComparison is the result of running the full pipeline on two concepts.
type ABComparison struct {
	ResultA         *domanalysis.AnalysisResult `json:"resultA"`
	ResultB         *domanalysis.AnalysisResult `json:"resultB"`
	ScoreDifference int                         `json:"scoreDifference"`
	Winner          Side                        `json:"winner"`
	Dimensions      []ComparisonDimension       `json:"dimensions"`
}

// higherWins resolves a numeric axis where larger is better.
func higherWins(a, b int) Side {
	switch {
	case a > b:
		return SideA
	case b > a:
		return SideB
	default:
		return SideTie
	}
}

// riskRank orders risk tiers so a lower-risk side wins the risk axis.
func riskRank(t domanalysis.RiskTier) int {
	switch t {
	case domanalysis.RiskLow:
		return 0
	case domanalysis.RiskModerate:
		return 1
	default:
		return 2
	}
}

// Compare runs the full pipeline on both concepts and resolves the overall
// winner plus six fixed dimensions.  The overall winner is Tie iff
// |scoreA − scoreB| ≤ 3.
func (s *Service) Compare(ctx context.Context, a, b concept.Concept, opts appanalysis.Options) (*ABComparison, error) {
	ra, err := s.analyzer.Analyze(ctx, a, opts)
	if err != nil {
		return nil, err
	}
	rb, err := s.analyzer.Analyze(ctx, b, opts)
	if err != nil {
		return nil, err
	}

	diff := ra.FinalScore - rb.FinalScore
	if diff < 0 {
		diff = -diff
	}
	winner := SideTie
	if diff > tieMargin {
		if ra.FinalScore > rb.FinalScore {
			winner = SideA
		} else {
			winner = SideB
		}
	}

	dims := []ComparisonDimension{
		{
			Name:   "Overall Score",
			ValueA: fmt.Sprintf("%d", ra.FinalScore),
			ValueB: fmt.Sprintf("%d", rb.FinalScore),
			Winner: higherWins(ra.FinalScore, rb.FinalScore),
		},
		{
			Name:   "Logline Strength",
			ValueA: fmt.Sprintf("%d", ra.Logline.TotalLoglineScore),
			ValueB: fmt.Sprintf("%d", rb.Logline.TotalLoglineScore),
			Winner: higherWins(ra.Logline.TotalLoglineScore, rb.Logline.TotalLoglineScore),
		},
		{
			Name:   "Market Fit",
			ValueA: fmt.Sprintf("%+d", ra.Market.GenreBonus),
			ValueB: fmt.Sprintf("%+d", rb.Market.GenreBonus),
			Winner: higherWins(ra.Market.GenreBonus, rb.Market.GenreBonus),
		},
		{
			Name:   "Buyer Matches",
			ValueA: fmt.Sprintf("%d", len(ra.BuyerMatches)),
			ValueB: fmt.Sprintf("%d", len(rb.BuyerMatches)),
			Winner: higherWins(len(ra.BuyerMatches), len(rb.BuyerMatches)),
		},
		{
			Name:   "Similarity Risk",
			ValueA: string(ra.Risk.Tier),
			ValueB: string(rb.Risk.Tier),
			// Lower risk wins, so the ranks are swapped into higherWins.
			Winner: higherWins(riskRank(rb.Risk.Tier), riskRank(ra.Risk.Tier)),
		},
		{
			Name:   "Strengths",
			ValueA: fmt.Sprintf("%d", len(ra.Strengths)),
			ValueB: fmt.Sprintf("%d", len(rb.Strengths)),
			Winner: higherWins(len(ra.Strengths), len(rb.Strengths)),
		},
	}

	return &ABComparison{
		ResultA:         ra,
		ResultB:         rb,
		ScoreDifference: diff,
		Winner:          winner,
		Dimensions:      dims,
	}, nil
}
