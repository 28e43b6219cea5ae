package analysis

import (
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

// Final-score clamp range.  A hard invariant: no analysis call may produce a
// score outside this closed interval.
const (
	MinFinalScore = 25
	MaxFinalScore = 98
)

// Verdict is the categorical label summarizing a final-score band.
type Verdict string

const (
	VerdictStudioPriority   Verdict = "Studio Priority Package"
	VerdictStrongGreenlight Verdict = "Strong Greenlight Potential"
	VerdictActiveDev        Verdict = "Active Development Recommended"
	VerdictDevelopmentPass  Verdict = "Development Pass – Revision Needed"
	VerdictBackToDev        Verdict = "Back to Development"
)

// VerdictBand describes one contiguous score band and its fixed narrative.
type VerdictBand struct {
	Verdict     Verdict `json:"verdict"`
	MinScore    int     `json:"minScore"` // inclusive
	MaxScore    int     `json:"maxScore"` // inclusive
	Description string  `json:"description"`
	NextSteps   string  `json:"nextSteps"`
}

// verdictBands covers [MinFinalScore, MaxFinalScore] contiguously and
// exhaustively, highest band first.  Band edges are part of the public
// contract; see VerdictForScore.
var verdictBands = []VerdictBand{
	{
		Verdict:     VerdictStudioPriority,
		MinScore:    90,
		MaxScore:    MaxFinalScore,
		Description: "Exceptional commercial package with four-quadrant potential and immediate marketplace heat.",
		NextSteps:   "Attach A-list elements, go wide to studios, and run a competitive bidding process.",
	},
	{
		Verdict:     VerdictStrongGreenlight,
		MinScore:    80,
		MaxScore:    89,
		Description: "Strong, clearly positioned concept that credible buyers will take meetings on as-is.",
		NextSteps:   "Polish the pitch document and target the top-matched buyers before broadening outreach.",
	},
	{
		Verdict:     VerdictActiveDev,
		MinScore:    70,
		MaxScore:    79,
		Description: "Marketable core with identifiable soft spots; a focused rewrite pass moves it up a tier.",
		NextSteps:   "Work the top two improvement areas, then re-run the analysis before taking it out.",
	},
	{
		Verdict:     VerdictDevelopmentPass,
		MinScore:    55,
		MaxScore:    69,
		Description: "Premise shows promise but the execution signals will not survive a buyer's coverage read.",
		NextSteps:   "Revise the logline against every flagged dimension and strengthen the synopsis structure.",
	},
	{
		Verdict:     VerdictBackToDev,
		MinScore:    MinFinalScore,
		MaxScore:    54,
		Description: "Concept is not yet competitive in the current marketplace.",
		NextSteps:   "Rethink the hook and stakes from first principles; consider the what-if scenarios for direction.",
	},
}

// VerdictBands returns a copy of the full band table, highest band first.
func VerdictBands() []VerdictBand {
	out := make([]VerdictBand, len(verdictBands))
	copy(out, verdictBands)
	return out
}

// VerdictForScore maps a clamped final score to its unique verdict band.
// Scores outside [MinFinalScore, MaxFinalScore] are invariant violations:
// the synthesizer's clamp must have already run.
func VerdictForScore(score int) (VerdictBand, error) {
	if score < MinFinalScore || score > MaxFinalScore {
		return VerdictBand{}, errors.Invariantf("score %d outside [%d,%d]", score, MinFinalScore, MaxFinalScore)
	}
	for _, band := range verdictBands {
		if score >= band.MinScore && score <= band.MaxScore {
			return band, nil
		}
	}
	// Unreachable while verdictBands stays contiguous.
	return VerdictBand{}, errors.New(errors.ErrCodeVerdictUnmapped, "no verdict band covers score").
		WithDetail("score out of table despite range check")
}
