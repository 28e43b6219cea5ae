// Package catalog ships the static in-memory catalog provider: buyer and
// producer profiles, the per-genre comparable-title shelves, and genre market
// statistics.  The data is an immutable snapshot compiled into the binary;
// the provider copies on read so callers can never mutate it.
package catalog

import (
	"context"

	domananalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	domcatalog "github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// fallback keys for unknown genres.
const (
	marketFallbackGenre = concept.GenreDrama
	shelfFallbackGenre  = concept.GenreThriller
)

// MemoryProvider serves the compiled-in catalog snapshot.  Safe for
// concurrent use; all methods return copies.
type MemoryProvider struct {
	buyers    []domcatalog.BuyerProfile
	producers []domcatalog.ProducerProfile
	shelves   map[concept.Genre][]domcatalog.TitleRecord
	market    map[concept.Genre]domcatalog.GenreMarketStats
}

// NewMemoryProvider constructs the provider over the built-in snapshot.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		buyers:    staticBuyers,
		producers: staticProducers,
		shelves:   staticShelves,
		market:    staticMarket,
	}
}

// Buyers returns all buyer profiles in catalog insertion order.
func (p *MemoryProvider) Buyers(_ context.Context) ([]domcatalog.BuyerProfile, error) {
	out := make([]domcatalog.BuyerProfile, len(p.buyers))
	copy(out, p.buyers)
	return out, nil
}

// Producers returns all producer profiles in catalog insertion order.
func (p *MemoryProvider) Producers(_ context.Context) ([]domcatalog.ProducerProfile, error) {
	out := make([]domcatalog.ProducerProfile, len(p.producers))
	copy(out, p.producers)
	return out, nil
}

// TitlesForGenre returns the genre's comparable shelf, falling back to the
// Thriller shelf when the genre has none.
func (p *MemoryProvider) TitlesForGenre(_ context.Context, g concept.Genre) ([]domcatalog.TitleRecord, bool, error) {
	genre, _ := concept.ParseGenre(string(g))
	shelf, ok := p.shelves[genre]
	fellBack := false
	if !ok || len(shelf) == 0 {
		shelf = p.shelves[shelfFallbackGenre]
		fellBack = true
	}
	out := make([]domcatalog.TitleRecord, len(shelf))
	copy(out, shelf)
	return out, fellBack, nil
}

// MarketStats returns the genre's market row, falling back to Drama when the
// genre is unknown.
func (p *MemoryProvider) MarketStats(_ context.Context, g concept.Genre) (domcatalog.GenreMarketStats, bool, error) {
	genre, known := concept.ParseGenre(string(g))
	if known {
		if stats, ok := p.market[genre]; ok {
			return stats, false, nil
		}
	}
	return p.market[marketFallbackGenre], true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Static snapshot
// ─────────────────────────────────────────────────────────────────────────────

var staticBuyers = []domcatalog.BuyerProfile{
	{
		Name: "Paramount Pictures", Type: domcatalog.BuyerStudio, BaseScore: 68,
		PreferredGenres: []concept.Genre{concept.GenreAction, concept.GenreThriller, concept.GenreSciFi},
		Formats:         []concept.Format{concept.FormatFeature},
		Appetite:        "chasing franchise-capable theatrical originals",
	},
	{
		Name: "Netflix", Type: domcatalog.BuyerStreamer, BaseScore: 74,
		PreferredGenres: []concept.Genre{concept.GenreThriller, concept.GenreDrama, concept.GenreRomance, concept.GenreDocumentary},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatLimitedSeries, concept.FormatTVSeries},
		Appetite:        "volume buyer with algorithm-backed genre appetite",
	},
	{
		Name: "A24", Type: domcatalog.BuyerIndependent, BaseScore: 62,
		PreferredGenres: []concept.Genre{concept.GenreHorror, concept.GenreDrama},
		Formats:         []concept.Format{concept.FormatFeature},
		Appetite:        "elevated auteur-driven material only",
	},
	{
		Name: "HBO", Type: domcatalog.BuyerNetwork, BaseScore: 70,
		PreferredGenres: []concept.Genre{concept.GenreDrama, concept.GenreMystery, concept.GenreThriller},
		Formats:         []concept.Format{concept.FormatLimitedSeries, concept.FormatTVSeries},
		Appetite:        "prestige series with awards trajectory",
	},
	{
		Name: "Blumhouse", Type: domcatalog.BuyerIndependent, BaseScore: 66,
		PreferredGenres: []concept.Genre{concept.GenreHorror, concept.GenreThriller},
		Formats:         []concept.Format{concept.FormatFeature},
		Appetite:        "contained-budget horror with a repeatable hook",
	},
	{
		Name: "Amazon MGM Studios", Type: domcatalog.BuyerStreamer, BaseScore: 69,
		PreferredGenres: []concept.Genre{concept.GenreAction, concept.GenreComedy, concept.GenreRomance},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatTVSeries},
		Appetite:        "star-driven four-quadrant plays",
	},
	{
		Name: "Apple TV+", Type: domcatalog.BuyerStreamer, BaseScore: 67,
		PreferredGenres: []concept.Genre{concept.GenreDrama, concept.GenreSciFi, concept.GenreMystery},
		Formats:         []concept.Format{concept.FormatLimitedSeries, concept.FormatTVSeries, concept.FormatFeature},
		Appetite:        "premium sheen, fewer but bigger swings",
	},
	{
		Name: "Universal Pictures", Type: domcatalog.BuyerStudio, BaseScore: 67,
		PreferredGenres: []concept.Genre{concept.GenreComedy, concept.GenreHorror, concept.GenreAction},
		Formats:         []concept.Format{concept.FormatFeature},
		Appetite:        "broad theatrical with marketing-ready hooks",
	},
	{
		Name: "Searchlight Pictures", Type: domcatalog.BuyerStudio, BaseScore: 61,
		PreferredGenres: []concept.Genre{concept.GenreDrama, concept.GenreComedy},
		Formats:         []concept.Format{concept.FormatFeature},
		Appetite:        "festival-corridor specialty titles",
	},
	{
		Name: "FX", Type: domcatalog.BuyerNetwork, BaseScore: 64,
		PreferredGenres: []concept.Genre{concept.GenreDrama, concept.GenreThriller, concept.GenreComedy},
		Formats:         []concept.Format{concept.FormatLimitedSeries, concept.FormatTVSeries},
		Appetite:        "distinctive voice-driven series",
	},
	{
		Name: "Lionsgate", Type: domcatalog.BuyerStudio, BaseScore: 63,
		PreferredGenres: []concept.Genre{concept.GenreAction, concept.GenreThriller, concept.GenreHorror},
		Formats:         []concept.Format{concept.FormatFeature},
		Appetite:        "mid-budget genre with international value",
	},
	{
		Name: "National Geographic", Type: domcatalog.BuyerNetwork, BaseScore: 58,
		PreferredGenres: []concept.Genre{concept.GenreDocumentary},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatLimitedSeries},
		Appetite:        "premium factual with access-driven stories",
	},
}

var staticProducers = []domcatalog.ProducerProfile{
	{
		Name: "Bad Robot", Specialty: "high-concept genre", BaseScore: 66,
		PreferredGenres: []concept.Genre{concept.GenreSciFi, concept.GenreThriller, concept.GenreMystery},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatTVSeries},
	},
	{
		Name: "Plan B Entertainment", Specialty: "prestige drama", BaseScore: 64,
		PreferredGenres: []concept.Genre{concept.GenreDrama, concept.GenreDocumentary},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatLimitedSeries},
	},
	{
		Name: "Atomic Monster", Specialty: "franchise horror", BaseScore: 67,
		PreferredGenres: []concept.Genre{concept.GenreHorror, concept.GenreThriller},
		Formats:         []concept.Format{concept.FormatFeature},
	},
	{
		Name: "Working Title", Specialty: "romance and comedy", BaseScore: 62,
		PreferredGenres: []concept.Genre{concept.GenreRomance, concept.GenreComedy, concept.GenreDrama},
		Formats:         []concept.Format{concept.FormatFeature},
	},
	{
		Name: "Legendary Entertainment", Specialty: "tentpole spectacle", BaseScore: 63,
		PreferredGenres: []concept.Genre{concept.GenreAction, concept.GenreSciFi, concept.GenreFantasy},
		Formats:         []concept.Format{concept.FormatFeature},
	},
	{
		Name: "Anonymous Content", Specialty: "elevated series", BaseScore: 65,
		PreferredGenres: []concept.Genre{concept.GenreDrama, concept.GenreMystery, concept.GenreThriller},
		Formats:         []concept.Format{concept.FormatLimitedSeries, concept.FormatTVSeries},
	},
	{
		Name: "Monkeypaw Productions", Specialty: "social-thriller horror", BaseScore: 64,
		PreferredGenres: []concept.Genre{concept.GenreHorror, concept.GenreThriller},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatLimitedSeries},
	},
	{
		Name: "Amblin Partners", Specialty: "four-quadrant adventure", BaseScore: 62,
		PreferredGenres: []concept.Genre{concept.GenreFantasy, concept.GenreSciFi, concept.GenreDrama},
		Formats:         []concept.Format{concept.FormatFeature},
	},
	{
		Name: "Lighthouse Documentary Group", Specialty: "theatrical factual", BaseScore: 57,
		PreferredGenres: []concept.Genre{concept.GenreDocumentary},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatLimitedSeries},
	},
	{
		Name: "Broken Lizard Industries", Specialty: "ensemble comedy", BaseScore: 56,
		PreferredGenres: []concept.Genre{concept.GenreComedy},
		Formats:         []concept.Format{concept.FormatFeature, concept.FormatTVSeries},
	},
}

var staticShelves = map[concept.Genre][]domcatalog.TitleRecord{
	concept.GenreThriller: {
		{
			Title: "Blackout Protocol", Year: 2022, Genre: concept.GenreThriller,
			Performance: "streaming top-10 in 31 territories",
			KeyElements: []string{"agent", "bomber", "city"},
			Keywords:    []string{"conspiracy", "manhunt", "countdown"},
		},
		{
			Title: "The Last Witness", Year: 2021, Genre: concept.GenreThriller,
			Performance: "$84M worldwide on a $22M budget",
			KeyElements: []string{"witness", "detective", "cover-up"},
			Keywords:    []string{"cat and mouse", "twist", "paranoia"},
		},
		{
			Title: "Forty-Eight Hours Under", Year: 2023, Genre: concept.GenreThriller,
			Performance: "platform breakout, 3-week theatrical hold",
			KeyElements: []string{"hostage", "deadline", "family"},
			Keywords:    []string{"ticking clock", "claustrophobic", "race against"},
		},
		{
			Title: "The Quiet Informant", Year: 2020, Genre: concept.GenreThriller,
			Performance: "modest theatrical, strong second-window streaming",
			KeyElements: []string{"informant", "cartel", "betrayal"},
			Keywords:    []string{"undercover", "moral ambiguity", "slow burn"},
		},
	},
	concept.GenreHorror: {
		{
			Title: "The Hollow Room", Year: 2023, Genre: concept.GenreHorror,
			Performance: "18x budget multiple theatrical",
			KeyElements: []string{"house", "mother", "presence"},
			Keywords:    []string{"haunted", "grief", "possession"},
		},
		{
			Title: "Vigil Night", Year: 2021, Genre: concept.GenreHorror,
			Performance: "festival acquisition, cult streaming tail",
			KeyElements: []string{"ritual", "small town", "curse"},
			Keywords:    []string{"folk horror", "dread", "sinister"},
		},
		{
			Title: "Don't Answer", Year: 2022, Genre: concept.GenreHorror,
			Performance: "$61M worldwide on a $6M budget",
			KeyElements: []string{"phone", "stalker", "sister"},
			Keywords:    []string{"contained", "terror", "nightmare"},
		},
	},
	concept.GenreDrama: {
		{
			Title: "What Remains of Us", Year: 2022, Genre: concept.GenreDrama,
			Performance: "three major award nominations",
			KeyElements: []string{"family", "secret", "homecoming"},
			Keywords:    []string{"redemption", "forgiveness", "legacy"},
		},
		{
			Title: "The Long Field", Year: 2021, Genre: concept.GenreDrama,
			Performance: "specialty-box-office leader for five weeks",
			KeyElements: []string{"farm", "father", "debt"},
			Keywords:    []string{"quiet", "struggle", "dignity"},
		},
		{
			Title: "Sing It Back", Year: 2023, Genre: concept.GenreDrama,
			Performance: "streamer awards-corridor centerpiece",
			KeyElements: []string{"musician", "comeback", "daughter"},
			Keywords:    []string{"second chance", "loss", "hope"},
		},
	},
	concept.GenreSciFi: {
		{
			Title: "Signal Decay", Year: 2022, Genre: concept.GenreSciFi,
			Performance: "streaming original, 92M hours first month",
			KeyElements: []string{"colony", "signal", "engineer"},
			Keywords:    []string{"space", "isolation", "first contact"},
		},
		{
			Title: "The Memory Market", Year: 2023, Genre: concept.GenreSciFi,
			Performance: "$140M worldwide, sequel greenlit",
			KeyElements: []string{"memory", "black market", "detective"},
			Keywords:    []string{"future", "technology", "identity"},
		},
	},
	concept.GenreComedy: {
		{
			Title: "Best Man Down Under", Year: 2022, Genre: concept.GenreComedy,
			Performance: "streaming top-10 debut",
			KeyElements: []string{"wedding", "brothers", "road trip"},
			Keywords:    []string{"ensemble", "mishap", "antics"},
		},
		{
			Title: "The Substitute", Year: 2023, Genre: concept.GenreComedy,
			Performance: "sleeper theatrical, strong word of mouth",
			KeyElements: []string{"teacher", "imposter", "school"},
			Keywords:    []string{"fish out of water", "hapless", "heart"},
		},
	},
	concept.GenreRomance: {
		{
			Title: "Departures and Arrivals", Year: 2023, Genre: concept.GenreRomance,
			Performance: "seasonal streaming hit, annual replay value",
			KeyElements: []string{"airport", "strangers", "second chance"},
			Keywords:    []string{"love", "missed connection", "soulmate"},
		},
	},
	concept.GenreFantasy: {
		{
			Title: "The Ninth Crown", Year: 2021, Genre: concept.GenreFantasy,
			Performance: "two-season series order",
			KeyElements: []string{"kingdom", "heir", "prophecy"},
			Keywords:    []string{"quest", "magic", "realm"},
		},
	},
	concept.GenreMystery: {
		{
			Title: "The Lake House Ledger", Year: 2022, Genre: concept.GenreMystery,
			Performance: "limited series, finale audience record",
			KeyElements: []string{"disappearance", "small town", "journalist"},
			Keywords:    []string{"clue", "unsolved", "suspect"},
		},
	},
	concept.GenreDocumentary: {
		{
			Title: "Paper Empire", Year: 2023, Genre: concept.GenreDocumentary,
			Performance: "festival premiere to global streaming deal",
			KeyElements: []string{"fraud", "whistleblower", "empire"},
			Keywords:    []string{"true story", "untold", "investigation"},
		},
	},
}

var staticMarket = map[concept.Genre]domcatalog.GenreMarketStats{
	concept.GenreAction: {
		Genre: concept.GenreAction, MarketShare: 22.5, GrowthRate: 4.2,
		Saturation: domananalysis.SaturationHigh, StreamingDemand: 82, AverageROI: 2.8,
	},
	concept.GenreComedy: {
		Genre: concept.GenreComedy, MarketShare: 14.0, GrowthRate: -1.5,
		Saturation: domananalysis.SaturationMedium, StreamingDemand: 74, AverageROI: 3.1,
	},
	concept.GenreDrama: {
		Genre: concept.GenreDrama, MarketShare: 18.0, GrowthRate: 1.8,
		Saturation: domananalysis.SaturationMedium, StreamingDemand: 76, AverageROI: 2.4,
	},
	concept.GenreFantasy: {
		Genre: concept.GenreFantasy, MarketShare: 8.5, GrowthRate: 6.0,
		Saturation: domananalysis.SaturationMedium, StreamingDemand: 80, AverageROI: 2.6,
	},
	concept.GenreHorror: {
		Genre: concept.GenreHorror, MarketShare: 9.5, GrowthRate: 12.0,
		Saturation: domananalysis.SaturationMedium, StreamingDemand: 84, AverageROI: 6.5,
	},
	concept.GenreMystery: {
		Genre: concept.GenreMystery, MarketShare: 6.0, GrowthRate: 8.5,
		Saturation: domananalysis.SaturationLow, StreamingDemand: 81, AverageROI: 3.4,
	},
	concept.GenreRomance: {
		Genre: concept.GenreRomance, MarketShare: 7.0, GrowthRate: 3.0,
		Saturation: domananalysis.SaturationLow, StreamingDemand: 78, AverageROI: 4.2,
	},
	concept.GenreSciFi: {
		Genre: concept.GenreSciFi, MarketShare: 10.0, GrowthRate: 7.2,
		Saturation: domananalysis.SaturationMedium, StreamingDemand: 85, AverageROI: 2.9,
	},
	concept.GenreThriller: {
		Genre: concept.GenreThriller, MarketShare: 12.5, GrowthRate: 9.0,
		Saturation: domananalysis.SaturationMedium, StreamingDemand: 88, AverageROI: 3.8,
	},
	concept.GenreDocumentary: {
		Genre: concept.GenreDocumentary, MarketShare: 4.0, GrowthRate: 10.5,
		Saturation: domananalysis.SaturationLow, StreamingDemand: 79, AverageROI: 5.0,
	},
}
