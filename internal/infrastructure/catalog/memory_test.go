package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

func TestBuyersAndProducersReturnCopies(t *testing.T) {
	p := NewMemoryProvider()
	ctx := context.Background()

	buyers, err := p.Buyers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, buyers)
	original := buyers[0].Name
	buyers[0].Name = "mutated"

	again, err := p.Buyers(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, again[0].Name)

	producers, err := p.Producers(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, producers)
}

func TestEveryGenreHasAMarketRow(t *testing.T) {
	p := NewMemoryProvider()
	for _, g := range concept.AllGenres {
		stats, fellBack, err := p.MarketStats(context.Background(), g)
		require.NoError(t, err)
		assert.False(t, fellBack, "genre %s should not fall back", g)
		assert.Equal(t, g, stats.Genre)
		assert.Positive(t, stats.StreamingDemand)
	}
}

func TestMarketStatsUnknownGenreFallsBackToDrama(t *testing.T) {
	p := NewMemoryProvider()
	stats, fellBack, err := p.MarketStats(context.Background(), concept.Genre("Western"))
	require.NoError(t, err)
	assert.True(t, fellBack)
	assert.Equal(t, concept.GenreDrama, stats.Genre)
}

func TestMarketStatsAcceptsAliasSpellings(t *testing.T) {
	p := NewMemoryProvider()
	stats, fellBack, err := p.MarketStats(context.Background(), concept.Genre("scifi"))
	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.Equal(t, concept.GenreSciFi, stats.Genre)
}

func TestTitlesForGenreFallsBackToThrillerShelf(t *testing.T) {
	p := NewMemoryProvider()
	ctx := context.Background()

	thriller, fellBack, err := p.TitlesForGenre(ctx, concept.GenreThriller)
	require.NoError(t, err)
	assert.False(t, fellBack)
	require.NotEmpty(t, thriller)

	unknown, fellBack, err := p.TitlesForGenre(ctx, concept.Genre("Western"))
	require.NoError(t, err)
	assert.True(t, fellBack)
	assert.Equal(t, thriller, unknown)
}

func TestShelvesCarryMatchableMetadata(t *testing.T) {
	p := NewMemoryProvider()
	for genre, shelf := range p.shelves {
		for _, title := range shelf {
			assert.Equal(t, genre, title.Genre, "title %q shelved under %s", title.Title, genre)
			assert.NotEmpty(t, title.KeyElements, "title %q", title.Title)
			assert.NotEmpty(t, title.Performance, "title %q", title.Title)
			assert.Positive(t, title.Year)
		}
	}
}

func TestBuyerBaseScoresLeaveRoomForAdjustments(t *testing.T) {
	p := NewMemoryProvider()
	for _, b := range p.buyers {
		assert.GreaterOrEqual(t, b.BaseScore, 50, "buyer %s", b.Name)
		assert.LessOrEqual(t, b.BaseScore, 80, "buyer %s", b.Name)
		assert.NotEmpty(t, b.PreferredGenres, "buyer %s", b.Name)
		assert.NotEmpty(t, b.Formats, "buyer %s", b.Name)
	}
	for _, pr := range p.producers {
		assert.GreaterOrEqual(t, pr.BaseScore, 50, "producer %s", pr.Name)
		assert.NotEmpty(t, pr.Specialty, "producer %s", pr.Name)
	}
}
