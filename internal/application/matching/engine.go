// Package matching ranks catalog buyers, producers, and comparable titles
// against a concept.  Match records are transient: recomputed on every call,
// never cached, never written back to the catalog.
package matching

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
)

// Adjustment weights for buyer/producer scoring.  Applied on top of each
// catalog entry's base score before the perturbation and clamp.
const (
	genrePreferenceBonus   = 8
	genreMismatchPenalty   = -6
	formatAlignmentBonus   = 4
	formatMismatchPenalty  = -4
	strongConceptBonus     = 6 // overall score >= 85
	solidConceptBonus      = 3 // overall score >= 75
	weakConceptPenalty     = -5 // overall score < 55
	comparableGenreBase    = 30
	comparableElementBonus = 12
	comparableKeywordBonus = 5
)

// Engine ranks catalog entries for a concept.  Stateless apart from the
// injected catalog provider; the random source is supplied per call.
type Engine struct {
	provider catalog.Provider
	logger   logging.Logger
}

// NewEngine constructs a matching Engine.
func NewEngine(provider catalog.Provider, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{provider: provider, logger: logger.Named("matching")}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tierAdjustment maps the concept's overall score to a match adjustment:
// strong concepts open more doors, weak ones close them.
func tierAdjustment(overallScore int) int {
	switch {
	case overallScore >= 85:
		return strongConceptBonus
	case overallScore >= 75:
		return solidConceptBonus
	case overallScore < 55:
		return weakConceptPenalty
	default:
		return 0
	}
}

// perturb draws the small per-entry random adjustment, an integer in [-3, 3].
func perturb(rng *rand.Rand) int {
	return rng.Intn(7) - 3
}

// MatchBuyers ranks catalog buyers against the concept.  Entries below the
// inclusion threshold are dropped; the remainder is sorted descending by
// match score with catalog insertion order as the stable tie-break, top 10.
func (e *Engine) MatchBuyers(ctx context.Context, c concept.Concept, overallScore int, rng *rand.Rand) ([]analysis.BuyerMatch, error) {
	buyers, err := e.provider.Buyers(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]analysis.BuyerMatch, 0, len(buyers))
	for _, b := range buyers {
		score := b.BaseScore
		var reasons []string
		if b.PrefersGenre(c.Genre) {
			score += genrePreferenceBonus
			reasons = append(reasons, fmt.Sprintf("actively buying %s", c.Genre))
		} else {
			score += genreMismatchPenalty
			reasons = append(reasons, fmt.Sprintf("%s is outside their core slate", c.Genre))
		}
		if b.AcceptsFormat(c.Format) {
			score += formatAlignmentBonus
			reasons = append(reasons, fmt.Sprintf("acquires %s", c.Format))
		} else {
			score += formatMismatchPenalty
		}
		score += tierAdjustment(overallScore)
		score += perturb(rng)
		score = clampInt(score, analysis.MinBuyerMatchScore, analysis.MaxBuyerMatchScore)
		if score < analysis.BuyerMatchThreshold {
			continue
		}
		matches = append(matches, analysis.BuyerMatch{
			Name:       b.Name,
			Type:       string(b.Type),
			MatchScore: score,
			Reason:     strings.Join(append(reasons, b.Appetite), "; "),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > analysis.MaxMatches {
		matches = matches[:analysis.MaxMatches]
	}
	return matches, nil
}

// MatchProducers ranks catalog production companies, using the same scheme
// as MatchBuyers.
func (e *Engine) MatchProducers(ctx context.Context, c concept.Concept, overallScore int, rng *rand.Rand) ([]analysis.ProducerMatch, error) {
	producers, err := e.provider.Producers(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]analysis.ProducerMatch, 0, len(producers))
	for _, p := range producers {
		score := p.BaseScore
		var reasons []string
		if p.PrefersGenre(c.Genre) {
			score += genrePreferenceBonus
			reasons = append(reasons, fmt.Sprintf("track record in %s", c.Genre))
		} else {
			score += genreMismatchPenalty
			reasons = append(reasons, fmt.Sprintf("limited %s experience", c.Genre))
		}
		if p.AcceptsFormat(c.Format) {
			score += formatAlignmentBonus
			reasons = append(reasons, fmt.Sprintf("produces %s", c.Format))
		} else {
			score += formatMismatchPenalty
		}
		score += tierAdjustment(overallScore)
		score += perturb(rng)
		score = clampInt(score, analysis.MinBuyerMatchScore, analysis.MaxBuyerMatchScore)
		if score < analysis.BuyerMatchThreshold {
			continue
		}
		matches = append(matches, analysis.ProducerMatch{
			Name:       p.Name,
			Specialty:  p.Specialty,
			MatchScore: score,
			Reason:     strings.Join(reasons, "; "),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > analysis.MaxMatches {
		matches = matches[:analysis.MaxMatches]
	}
	return matches, nil
}

// MatchComparables ranks the genre's comparable-title shelf.  Similarity is
// built from a genre-match base, key-element hits in the logline, and
// stylistic keyword overlap; no random perturbation is applied, so comparable
// lists are fully deterministic.  An unknown genre falls back to the
// Thriller shelf.
func (e *Engine) MatchComparables(ctx context.Context, c concept.Concept) ([]analysis.ComparableTitle, error) {
	titles, fellBack, err := e.provider.TitlesForGenre(ctx, c.Genre)
	if err != nil {
		return nil, err
	}
	if fellBack {
		e.logger.Warn("no comparable shelf for genre, using thriller shelf",
			logging.String("genre", string(c.Genre)))
	}
	text := strings.ToLower(c.Logline + " " + c.Synopsis)
	loglineLower := strings.ToLower(c.Logline)

	matches := make([]analysis.ComparableTitle, 0, len(titles))
	for _, t := range titles {
		score := 0
		var reasons []string
		if t.Genre == c.Genre {
			score += comparableGenreBase
			reasons = append(reasons, fmt.Sprintf("same genre (%s)", t.Genre))
		}
		elements := 0
		for _, el := range t.KeyElements {
			if strings.Contains(loglineLower, strings.ToLower(el)) {
				score += comparableElementBonus
				elements++
			}
		}
		if elements > 0 {
			reasons = append(reasons, fmt.Sprintf("%d shared premise elements", elements))
		}
		overlaps := 0
		for _, kw := range t.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				score += comparableKeywordBonus
				overlaps++
			}
		}
		if overlaps > 0 {
			reasons = append(reasons, fmt.Sprintf("%d stylistic overlaps", overlaps))
		}
		if len(reasons) == 0 {
			reasons = append(reasons, "adjacent market positioning")
		}
		score = clampInt(score, analysis.MinComparableMatchScore, analysis.MaxComparableMatchScore)
		matches = append(matches, analysis.ComparableTitle{
			Title:       t.Title,
			Year:        t.Year,
			Performance: t.Performance,
			MatchScore:  score,
			Reason:      strings.Join(reasons, "; "),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > analysis.MaxMatches {
		matches = matches[:analysis.MaxMatches]
	}
	return matches, nil
}
