package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

// stubProvider is a function-field catalog.Provider for unit tests.
type stubProvider struct {
	buyers    func(ctx context.Context) ([]catalog.BuyerProfile, error)
	producers func(ctx context.Context) ([]catalog.ProducerProfile, error)
	titles    func(ctx context.Context, g concept.Genre) ([]catalog.TitleRecord, bool, error)
	market    func(ctx context.Context, g concept.Genre) (catalog.GenreMarketStats, bool, error)
}

func (s *stubProvider) Buyers(ctx context.Context) ([]catalog.BuyerProfile, error) {
	if s.buyers == nil {
		return nil, nil
	}
	return s.buyers(ctx)
}

func (s *stubProvider) Producers(ctx context.Context) ([]catalog.ProducerProfile, error) {
	if s.producers == nil {
		return nil, nil
	}
	return s.producers(ctx)
}

func (s *stubProvider) TitlesForGenre(ctx context.Context, g concept.Genre) ([]catalog.TitleRecord, bool, error) {
	if s.titles == nil {
		return nil, false, nil
	}
	return s.titles(ctx, g)
}

func (s *stubProvider) MarketStats(ctx context.Context, g concept.Genre) (catalog.GenreMarketStats, bool, error) {
	if s.market == nil {
		return catalog.GenreMarketStats{}, false, nil
	}
	return s.market(ctx, g)
}

func marketProviderFor(stats catalog.GenreMarketStats, fellBack bool) *stubProvider {
	return &stubProvider{
		market: func(context.Context, concept.Genre) (catalog.GenreMarketStats, bool, error) {
			return stats, fellBack, nil
		},
	}
}

func TestMarketAnalyzeBonusFormula(t *testing.T) {
	cases := []struct {
		name  string
		stats catalog.GenreMarketStats
		want  int
	}{
		{
			name: "growing low-saturation genre hits the ceiling",
			// round(12/3)=4, low +5, round((90-75)/5)=3, roi>4 +3 → 15
			stats: catalog.GenreMarketStats{
				Genre: concept.GenreHorror, GrowthRate: 12, Saturation: domanalysis.SaturationLow,
				StreamingDemand: 90, AverageROI: 6.5,
			},
			want: 15,
		},
		{
			name: "shrinking saturated genre bottoms out",
			// shrinking −3, high −3, round((40-75)/5)=−7 clamped to −3, roi ≤3 +0 → −9
			stats: catalog.GenreMarketStats{
				Genre: concept.GenreAction, GrowthRate: -2, Saturation: domanalysis.SaturationHigh,
				StreamingDemand: 40, AverageROI: 1.8,
			},
			want: -9,
		},
		{
			name: "medium saturation adds nothing",
			// round(9/3)=3, medium +0, round((88-75)/5)=3, roi>3 +1 → 7
			stats: catalog.GenreMarketStats{
				Genre: concept.GenreThriller, GrowthRate: 9, Saturation: domanalysis.SaturationMedium,
				StreamingDemand: 88, AverageROI: 3.8,
			},
			want: 7,
		},
		{
			name: "growth credit is capped at 10",
			// round(60/3)=20 clamped to 10, low +5, round((100-75)/5)=5 → capped at 15
			stats: catalog.GenreMarketStats{
				Genre: concept.GenreSciFi, GrowthRate: 60, Saturation: domanalysis.SaturationLow,
				StreamingDemand: 100, AverageROI: 5,
			},
			want: 15,
		},
		{
			name: "zero growth counts as shrinking",
			// 0 is not growing → −3, medium +0, round((75-75)/5)=0 → −3
			stats: catalog.GenreMarketStats{
				Genre: concept.GenreRomance, GrowthRate: 0, Saturation: domanalysis.SaturationMedium,
				StreamingDemand: 75, AverageROI: 2,
			},
			want: -3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMarketAnalyzer(marketProviderFor(tc.stats, false), nil)
			got, err := m.Analyze(context.Background(), tc.stats.Genre)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.GenreBonus)
			assert.GreaterOrEqual(t, got.GenreBonus, domanalysis.MinGenreBonus)
			assert.LessOrEqual(t, got.GenreBonus, domanalysis.MaxGenreBonus)
		})
	}
}

func TestMarketAnalyzeReportsFallback(t *testing.T) {
	stats := catalog.GenreMarketStats{
		Genre: concept.GenreDrama, GrowthRate: 3, Saturation: domanalysis.SaturationMedium,
		StreamingDemand: 80, AverageROI: 2.4,
	}
	m := NewMarketAnalyzer(marketProviderFor(stats, true), nil)
	got, err := m.Analyze(context.Background(), concept.Genre("Western"))
	require.NoError(t, err)
	assert.True(t, got.Fallback)
	assert.Equal(t, string(concept.GenreDrama), got.Genre)
}

func TestMarketInsightsCoverEveryComponent(t *testing.T) {
	m := domanalysis.GenreMarketAnalysis{
		Genre: "Thriller", GrowthRate: 9, Saturation: domanalysis.SaturationMedium,
		StreamingDemand: 88, AverageROI: 3.8,
	}
	got := marketInsights(m)
	assert.Equal(t, []string{
		"Thriller demand is growing 9.0% year over year.",
		"Competition is steady; a distinctive hook still stands out.",
		"Streaming demand is exceptional at 88/100.",
		"Average return of 3.8x budget supports aggressive packaging.",
	}, got)
}

func TestMarketInsightsFlagContractionCrowdingAndFallback(t *testing.T) {
	m := domanalysis.GenreMarketAnalysis{
		Genre: "Drama", GrowthRate: 0, Saturation: domanalysis.SaturationHigh,
		StreamingDemand: 40, AverageROI: 1.2, Fallback: true,
	}
	got := marketInsights(m)
	assert.Equal(t, []string{
		"Drama demand is flat or contracting; expect longer sales cycles.",
		"The market is crowded; differentiation will drive the sale.",
		"Streaming demand is soft at 40/100; theatrical or prestige positioning may fit better.",
		"No dedicated market data for this genre; Drama statistics are shown as the nearest proxy.",
	}, got)
}

func TestMarketInsightsAreDeterministic(t *testing.T) {
	m := domanalysis.GenreMarketAnalysis{
		Genre: "Horror", GrowthRate: 12, Saturation: domanalysis.SaturationLow,
		StreamingDemand: 90, AverageROI: 6.5,
	}
	assert.Equal(t, marketInsights(m), marketInsights(m))
}

func TestMarketAnalyzePropagatesProviderError(t *testing.T) {
	p := &stubProvider{
		market: func(context.Context, concept.Genre) (catalog.GenreMarketStats, bool, error) {
			return catalog.GenreMarketStats{}, false, errors.New(errors.ErrCodeCatalogUnavailable, "catalog down")
		},
	}
	m := NewMarketAnalyzer(p, nil)
	_, err := m.Analyze(context.Background(), concept.GenreDrama)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogUnavailable))
}
