package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

func validResult(t *testing.T) AnalysisResult {
	t.Helper()
	band, err := VerdictForScore(72)
	require.NoError(t, err)
	return AnalysisResult{
		Logline:    validBreakdown(),
		FinalScore: 72,
		Verdict:    band,
		BuyerMatches: []BuyerMatch{
			{Name: "Netflix", MatchScore: 88},
			{Name: "HBO", MatchScore: 74},
		},
		ProducerMatches: []ProducerMatch{
			{Name: "Plan B", MatchScore: 70},
		},
		ComparableTitles: []ComparableTitle{
			{Title: "Blackout Protocol", MatchScore: 66},
			{Title: "The Night Courier", MatchScore: 40},
		},
		Feedback: []FeedbackItem{
			{Category: "Conflict", Priority: 1},
			{Category: "Hook", Priority: 3},
		},
		Improvements: []ImprovementArea{
			{Area: "Conflict", Impact: 9},
			{Area: "Hook", Impact: 7},
		},
	}
}

func TestResultValidateAcceptsConsistentResult(t *testing.T) {
	require.NoError(t, validResult(t).Validate())
}

func TestResultValidateRejectsVerdictNotCoveringScore(t *testing.T) {
	errors.SetDebugMode(false)
	defer errors.SetDebugMode(true)

	r := validResult(t)
	r.FinalScore = 91
	require.Error(t, r.Validate())
}

func TestResultValidateRejectsUnsortedMatchLists(t *testing.T) {
	r := validResult(t)
	r.BuyerMatches[0], r.BuyerMatches[1] = r.BuyerMatches[1], r.BuyerMatches[0]
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMatchListUnsorted))

	r = validResult(t)
	r.ComparableTitles[0], r.ComparableTitles[1] = r.ComparableTitles[1], r.ComparableTitles[0]
	err = r.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMatchListUnsorted))
}

func TestResultValidateRejectsBuyerScoreBelowThreshold(t *testing.T) {
	errors.SetDebugMode(false)
	defer errors.SetDebugMode(true)

	r := validResult(t)
	r.BuyerMatches[1].MatchScore = BuyerMatchThreshold - 1
	require.Error(t, r.Validate())
}

func TestResultValidateRejectsOversizedMatchLists(t *testing.T) {
	errors.SetDebugMode(false)
	defer errors.SetDebugMode(true)

	r := validResult(t)
	r.BuyerMatches = nil
	for i := 0; i <= MaxMatches; i++ {
		r.BuyerMatches = append(r.BuyerMatches, BuyerMatch{MatchScore: 90})
	}
	require.Error(t, r.Validate())
}

func TestResultValidateRejectsMisorderedFeedbackAndImprovements(t *testing.T) {
	errors.SetDebugMode(false)
	defer errors.SetDebugMode(true)

	r := validResult(t)
	r.Feedback[0], r.Feedback[1] = r.Feedback[1], r.Feedback[0]
	require.Error(t, r.Validate())

	r = validResult(t)
	r.Improvements[0], r.Improvements[1] = r.Improvements[1], r.Improvements[0]
	require.Error(t, r.Validate())
}
