package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
)

// MarketAnalyzer derives the bounded genre bonus from catalog market
// statistics.  Unknown genres resolve through the provider's Drama fallback;
// the analyzer never errors on caller input.
type MarketAnalyzer struct {
	provider catalog.Provider
	logger   logging.Logger
}

// NewMarketAnalyzer constructs a MarketAnalyzer.
func NewMarketAnalyzer(provider catalog.Provider, logger logging.Logger) *MarketAnalyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &MarketAnalyzer{provider: provider, logger: logger.Named("market")}
}

// Analyze looks up the genre's market row and derives its bonus.
//
// Bonus formula, applied in order:
//
//	growth:    growing → clamp(round(growth/3), 0, 10); shrinking → −3
//	saturation: low → +5; high → −3
//	streaming: clamp(round((demand−75)/5), −3, 5)
//	roi:       >4 → +3; >3 → +1
//	final:     clamp(sum, −10, 15)
func (m *MarketAnalyzer) Analyze(ctx context.Context, g concept.Genre) (analysis.GenreMarketAnalysis, error) {
	stats, fellBack, err := m.provider.MarketStats(ctx, g)
	if err != nil {
		return analysis.GenreMarketAnalysis{}, err
	}
	if fellBack {
		m.logger.Warn("unknown genre, using drama market statistics",
			logging.String("genre", string(g)))
	}

	bonus := 0
	if stats.GrowthRate > 0 {
		bonus += clampInt(int(math.Round(stats.GrowthRate/3)), 0, 10)
	} else {
		bonus -= 3
	}
	switch stats.Saturation {
	case analysis.SaturationLow:
		bonus += 5
	case analysis.SaturationHigh:
		bonus -= 3
	}
	bonus += clampInt(int(math.Round(float64(stats.StreamingDemand-75)/5)), -3, 5)
	switch {
	case stats.AverageROI > 4:
		bonus += 3
	case stats.AverageROI > 3:
		bonus += 1
	}
	bonus = clampInt(bonus, analysis.MinGenreBonus, analysis.MaxGenreBonus)

	return analysis.GenreMarketAnalysis{
		Genre:           string(stats.Genre),
		MarketShare:     stats.MarketShare,
		GrowthRate:      stats.GrowthRate,
		Saturation:      stats.Saturation,
		StreamingDemand: stats.StreamingDemand,
		AverageROI:      stats.AverageROI,
		GenreBonus:      bonus,
		Fallback:        fellBack,
	}, nil
}

// marketInsights renders the market picture as reader-facing observations.
// Purely derived from the analysis fields, so equal inputs give equal output.
func marketInsights(m analysis.GenreMarketAnalysis) []string {
	insights := []string{}

	if m.GrowthRate > 0 {
		insights = append(insights,
			fmt.Sprintf("%s demand is growing %.1f%% year over year.", m.Genre, m.GrowthRate))
	} else {
		insights = append(insights,
			fmt.Sprintf("%s demand is flat or contracting; expect longer sales cycles.", m.Genre))
	}

	switch m.Saturation {
	case analysis.SaturationLow:
		insights = append(insights, "Buyer appetite currently outpaces supply in this genre.")
	case analysis.SaturationHigh:
		insights = append(insights, "The market is crowded; differentiation will drive the sale.")
	default:
		insights = append(insights, "Competition is steady; a distinctive hook still stands out.")
	}

	switch {
	case m.StreamingDemand >= 85:
		insights = append(insights,
			fmt.Sprintf("Streaming demand is exceptional at %d/100.", m.StreamingDemand))
	case m.StreamingDemand < 60:
		insights = append(insights,
			fmt.Sprintf("Streaming demand is soft at %d/100; theatrical or prestige positioning may fit better.", m.StreamingDemand))
	}

	if m.AverageROI > 3 {
		insights = append(insights,
			fmt.Sprintf("Average return of %.1fx budget supports aggressive packaging.", m.AverageROI))
	}

	if m.Fallback {
		insights = append(insights,
			"No dedicated market data for this genre; Drama statistics are shown as the nearest proxy.")
	}
	return insights
}
