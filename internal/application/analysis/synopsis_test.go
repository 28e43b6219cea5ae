package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

func TestSynopsisQualityWordBaseAndKeywordBonuses(t *testing.T) {
	e := NewSynopsisEvaluator()

	assert.Equal(t, 0.0, e.SynopsisQuality(""))
	assert.Equal(t, 0.0, e.SynopsisQuality("   \n\t  "))
	assert.Equal(t, 1.0, e.SynopsisQuality("too short to matter"))
	assert.Equal(t, 3.0, e.SynopsisQuality(strings.Repeat("plot ", 30)))
	assert.Equal(t, 4.0, e.SynopsisQuality(strings.Repeat("plot ", 75)))
	assert.Equal(t, 5.0, e.SynopsisQuality(strings.Repeat("plot ", 150)))

	// Structure needs two distinct markers; one is not enough.
	oneMarker := strings.Repeat("plot ", 150) + "when everything falls apart"
	assert.Equal(t, 5.0, e.SynopsisQuality(oneMarker))
	twoMarkers := strings.Repeat("plot ", 150) + "the story begins when everything falls apart"
	assert.Equal(t, 7.0, e.SynopsisQuality(twoMarkers))

	full := strings.Repeat("plot ", 150) +
		"the story begins when she discovers the truth, she transforms, and it explores grief"
	assert.Equal(t, 10.0, e.SynopsisQuality(full))
}

func TestFormatFitSynergyAndSeriesBonuses(t *testing.T) {
	e := NewSynopsisEvaluator()

	// Base only: no synergy row for feature documentary.
	assert.Equal(t, 4.0, e.FormatFit(concept.Concept{
		Genre: concept.GenreDocumentary, Format: concept.FormatFeature,
	}))

	// Synergy pairing.
	assert.Equal(t, 8.0, e.FormatFit(concept.Concept{
		Genre: concept.GenreThriller, Format: concept.FormatFeature,
	}))

	// Series engine genre without synergy: 4 + 2.
	assert.Equal(t, 6.0, e.FormatFit(concept.Concept{
		Genre: concept.GenreFantasy, Format: concept.FormatLimitedSeries,
	}))

	// Synergy + engine + shape terms would be 11; capped at 8.
	assert.Equal(t, 8.0, e.FormatFit(concept.Concept{
		Genre:    concept.GenreDrama,
		Format:   concept.FormatLimitedSeries,
		Synopsis: "Each episode follows one case over the series.",
	}))
}

func TestAdvancedOptionsCreditsDeclaredMetadata(t *testing.T) {
	e := NewSynopsisEvaluator()

	assert.Equal(t, 0.0, e.AdvancedOptions(concept.Concept{}))

	c := concept.Concept{
		SecondaryGenre:  concept.GenreComedy, // +2
		Tone:            "Dark",              // +1.5
		TargetAudience:  "Adults 25-54",      // +1.5
		BudgetTier:      concept.BudgetLow,   // +1.5
		SettingPeriod:   "1970s",             // +1
		ProtagonistType: "Antihero",          // +1
	}
	assert.Equal(t, 8.5, e.AdvancedOptions(c))

	c.TargetAudience = "Prestige / Awards" // +1.5 audience +1.5 prestige
	assert.Equal(t, 10.0, e.AdvancedOptions(c))
}

func TestComparablesBonusWeightsFirstThreeTitles(t *testing.T) {
	e := NewSynopsisEvaluator()

	assert.Equal(t, 0.0, e.ComparablesBonus(concept.Concept{}))
	assert.Equal(t, 2.0, e.ComparablesBonus(concept.Concept{ComparableTitles: []string{"Heat"}}))
	assert.Equal(t, 4.0, e.ComparablesBonus(concept.Concept{ComparableTitles: []string{"Heat", "Se7en"}}))
	assert.Equal(t, 5.0, e.ComparablesBonus(concept.Concept{
		ComparableTitles: []string{"Heat", "Se7en", "Prisoners", "Extra"},
	}))
	// Blank entries earn nothing but keep their slot's weight position.
	assert.Equal(t, 3.0, e.ComparablesBonus(concept.Concept{
		ComparableTitles: []string{"Heat", "  ", "Prisoners"},
	}))
}
