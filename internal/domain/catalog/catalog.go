// Package catalog defines the static market-knowledge entities the engine
// matches against: buyer and producer profiles, the comparable-title shelf,
// and per-genre market statistics.  The Provider interface abstracts the
// backing store; the shipped implementation is an in-memory snapshot.
package catalog

import (
	"context"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// BuyerType classifies a buyer by acquisition model.
type BuyerType string

const (
	BuyerStudio      BuyerType = "Studio"
	BuyerStreamer    BuyerType = "Streamer"
	BuyerNetwork     BuyerType = "Network"
	BuyerIndependent BuyerType = "Independent"
)

// BuyerProfile is one catalog buyer.  BaseScore seeds the matching engine's
// computation; PreferredGenres and Formats drive the adjustments.
type BuyerProfile struct {
	Name            string
	Type            BuyerType
	PreferredGenres []concept.Genre
	Formats         []concept.Format
	BaseScore       int
	Appetite        string // one-line acquisition posture, surfaced in reasons
}

// PrefersGenre reports whether g is on the buyer's preference list.
func (b BuyerProfile) PrefersGenre(g concept.Genre) bool {
	for _, pg := range b.PreferredGenres {
		if pg == g {
			return true
		}
	}
	return false
}

// AcceptsFormat reports whether the buyer acquires the given format.
func (b BuyerProfile) AcceptsFormat(f concept.Format) bool {
	for _, pf := range b.Formats {
		if pf == f {
			return true
		}
	}
	return false
}

// ProducerProfile is one catalog production company.
type ProducerProfile struct {
	Name            string
	Specialty       string
	PreferredGenres []concept.Genre
	Formats         []concept.Format
	BaseScore       int
}

// PrefersGenre reports whether g is on the producer's preference list.
func (p ProducerProfile) PrefersGenre(g concept.Genre) bool {
	for _, pg := range p.PreferredGenres {
		if pg == g {
			return true
		}
	}
	return false
}

// AcceptsFormat reports whether the producer works in the given format.
func (p ProducerProfile) AcceptsFormat(f concept.Format) bool {
	for _, pf := range p.Formats {
		if pf == f {
			return true
		}
	}
	return false
}

// TitleRecord is one shelf entry of the comparable-title catalog.
type TitleRecord struct {
	Title       string
	Year        int
	Genre       concept.Genre
	Performance string   // box-office / viewership framing, surfaced verbatim
	KeyElements []string // premise nouns matched against the logline
	Keywords    []string // stylistic descriptors matched for overlap
}

// GenreMarketStats is the raw per-genre statistic row the market analyzer
// derives its bonus from.
type GenreMarketStats struct {
	Genre           concept.Genre
	MarketShare     float64
	GrowthRate      float64
	Saturation      analysis.SaturationLevel
	StreamingDemand int
	AverageROI      float64
}

// Provider serves catalog reads.  All lists are returned in stable catalog
// insertion order; that order is the matching engine's tie-break.
// Buyers and Producers deliberately return the full unfiltered catalog rather
// than a per-genre query: the matching engine scores every profile and applies
// the genre-mismatch penalty itself, which a pre-filtered list could never
// trigger.  Implementations must never error on an unknown genre; titles fall
// back to the Thriller shelf and MarketStats to the Drama row.
type Provider interface {
	Buyers(ctx context.Context) ([]BuyerProfile, error)
	Producers(ctx context.Context) ([]ProducerProfile, error)

	// TitlesForGenre returns the comparable-title shelf for a genre.  An
	// unknown or empty shelf falls back to the Thriller shelf; the bool
	// reports whether a fallback happened.
	TitlesForGenre(ctx context.Context, g concept.Genre) ([]TitleRecord, bool, error)

	// MarketStats returns the market row for a genre.  Unknown genres fall
	// back to the Drama row; the bool reports whether a fallback happened.
	MarketStats(ctx context.Context, g concept.Genre) (GenreMarketStats, bool, error)
}
