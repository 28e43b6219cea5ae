package analysis

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

func TestSynthesizeClampsToScoreRange(t *testing.T) {
	s := NewScoreSynthesizer(NewSynopsisEvaluator())

	// Worst case: zero logline, floor genre bonus, empty concept.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		final, band, err := s.Synthesize(concept.Concept{}, 0, domanalysis.MinGenreBonus, rng)
		require.NoError(t, err)
		assert.Equal(t, domanalysis.MinFinalScore, final)
		assert.Equal(t, domanalysis.VerdictBackToDev, band.Verdict)
	}

	// Best case: perfect logline, ceiling genre bonus, fully packaged
	// concept.  The deterministic terms sum to 98; jitter can only pull the
	// total down, never past the clamp.
	loaded := concept.Concept{
		Logline:          "irrelevant here",
		Synopsis:         strings.Repeat("plot ", 150) + "the story begins when she discovers, transforms, and explores loss",
		Genre:            concept.GenreThriller,
		Format:           concept.FormatFeature,
		SecondaryGenre:   concept.GenreHorror,
		Tone:             "Relentless",
		TargetAudience:   "Prestige / Awards",
		BudgetTier:       concept.BudgetMedium,
		SettingPeriod:    "Present day",
		ProtagonistType:  "Antihero",
		ComparableTitles: []string{"Heat", "Se7en", "Prisoners"},
	}
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		final, band, err := s.Synthesize(loaded, 100, domanalysis.MaxGenreBonus, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, final, 96)
		assert.LessOrEqual(t, final, domanalysis.MaxFinalScore)
		assert.Equal(t, domanalysis.VerdictStudioPriority, band.Verdict)
	}
}

func TestSynthesizeTermOrderWithoutJitter(t *testing.T) {
	s := NewScoreSynthesizer(NewSynopsisEvaluator())
	c := concept.Concept{
		Genre:  concept.GenreThriller,
		Format: concept.FormatFeature, // synergy pairing → format fit 8
	}

	// Find a seed whose first jitter draw is zero so the deterministic part
	// of the formula is observable directly.
	var rng *rand.Rand
	for seed := int64(0); ; seed++ {
		probe := rand.New(rand.NewSource(seed))
		if jitter(probe) == 0 {
			rng = rand.New(rand.NewSource(seed))
			break
		}
	}

	// 60×0.5 + 7 + 0 + 8 + 0 + 0 = 45
	final, band, err := s.Synthesize(c, 60, 7, rng)
	require.NoError(t, err)
	assert.Equal(t, 45, final)
	assert.Equal(t, domanalysis.VerdictBackToDev, band.Verdict)
}

func TestJitterStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		j := jitter(rng)
		assert.GreaterOrEqual(t, j, -2)
		assert.LessOrEqual(t, j, 2)
		seen[j] = true
	}
	assert.Len(t, seen, 5)
}

func TestWithSeedProducesIdenticalDraws(t *testing.T) {
	a := newRand(WithSeed(42))
	b := newRand(WithSeed(42))
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestUnseededSourcesAreIndependent(t *testing.T) {
	a := newRand(Options{})
	b := newRand(Options{})
	same := true
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			same = false
		}
	}
	assert.False(t, same, "two unseeded sources drew identical streams")
}
