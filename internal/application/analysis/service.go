package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/slatedeck/GreenLight-Intelligence/internal/application/feedback"
	"github.com/slatedeck/GreenLight-Intelligence/internal/application/matching"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// ResultCache caches finished results keyed by concept content and seed.
// Caching is an infrastructure optimization only: it is consulted solely for
// seeded (already deterministic) calls, so a hit can never change output.
type ResultCache interface {
	GetResult(ctx context.Context, key string) (*analysis.AnalysisResult, bool)
	SetResult(ctx context.Context, key string, r *analysis.AnalysisResult)
}

// EventPublisher receives best-effort notifications after an analysis
// completes.  Publishers must never block or fail the scoring path.
type EventPublisher interface {
	ConceptAnalyzed(ctx context.Context, r *analysis.AnalysisResult)
}

// MetricsRecorder receives pipeline observations.
type MetricsRecorder interface {
	ObserveAnalysis(d time.Duration, verdict string)
	ObserveMatchCounts(buyers, producers, comparables int)
	CacheLookup(hit bool)
}

// Service orchestrates the full scoring pipeline for one concept: logline
// breakdown, market bonus, score synthesis, risk, catalog matching, and
// feedback, assembled into a single immutable AnalysisResult.
type Service struct {
	logline  *LoglineAnalyzer
	market   *MarketAnalyzer
	synth    *ScoreSynthesizer
	risk     *RiskAssessor
	matcher  *matching.Engine
	feedback *feedback.Generator

	cache   ResultCache     // optional
	events  EventPublisher  // optional
	metrics MetricsRecorder // optional
	logger  logging.Logger
}

// NewService wires the pipeline against a catalog provider.  cache, events,
// and metrics may be nil; the pipeline runs identically without them.
func NewService(provider catalog.Provider, cache ResultCache, events EventPublisher, metrics MetricsRecorder, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("analysis")
	return &Service{
		logline:  NewLoglineAnalyzer(),
		market:   NewMarketAnalyzer(provider, logger),
		synth:    NewScoreSynthesizer(NewSynopsisEvaluator()),
		risk:     NewRiskAssessor(),
		matcher:  matching.NewEngine(provider, logger),
		feedback: feedback.NewGenerator(),
		cache:    cache,
		events:   events,
		metrics:  metrics,
		logger:   logger,
	}
}

// cacheKey hashes the normalized concept plus the seed.  Only seeded calls
// are cacheable; unseeded calls carry fresh randomness by contract.
func cacheKey(c concept.Concept, seed int64) string {
	raw, _ := json.Marshal(c)
	sum := sha256.Sum256(append(raw, []byte(fmt.Sprintf("|%d", seed))...))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// Analyze runs the full pipeline.  It never rejects a syntactically valid
// Concept: missing fields produce degenerate-but-valid scores.  With a fixed
// opts.Seed the result is bit-identical across calls apart from ID and
// timestamp.
func (s *Service) Analyze(ctx context.Context, in concept.Concept, opts Options) (*analysis.AnalysisResult, error) {
	start := time.Now()
	c := in.Normalize()

	var key string
	if opts.Seed != nil && s.cache != nil {
		key = cacheKey(c, *opts.Seed)
		if cached, ok := s.cache.GetResult(ctx, key); ok {
			if s.metrics != nil {
				s.metrics.CacheLookup(true)
			}
			return cached, nil
		}
		if s.metrics != nil {
			s.metrics.CacheLookup(false)
		}
	}

	rng := newRand(opts)

	breakdown := s.logline.Analyze(c)
	if err := breakdown.Validate(); err != nil {
		return nil, err
	}

	market, err := s.market.Analyze(ctx, c.Genre)
	if err != nil {
		return nil, err
	}

	final, band, err := s.synth.Synthesize(c, breakdown.TotalLoglineScore, market.GenreBonus, rng)
	if err != nil {
		return nil, err
	}

	risk := s.risk.Assess(c, market.Saturation)

	buyers, err := s.matcher.MatchBuyers(ctx, c, final, rng)
	if err != nil {
		return nil, err
	}
	producers, err := s.matcher.MatchProducers(ctx, c, final, rng)
	if err != nil {
		return nil, err
	}
	comparables, err := s.matcher.MatchComparables(ctx, c)
	if err != nil {
		return nil, err
	}

	result := &analysis.AnalysisResult{
		ID:               common.NewID(),
		Timestamp:        common.NewTimestamp(),
		Concept:          c,
		Logline:          breakdown,
		Market:           market,
		FinalScore:       final,
		Verdict:          band,
		Risk:             risk,
		BuyerMatches:     buyers,
		ProducerMatches:  producers,
		ComparableTitles: comparables,
		Feedback:         s.feedback.Feedback(breakdown, c),
		Strengths:        s.feedback.Strengths(breakdown, c),
		Improvements:     s.feedback.Improvements(breakdown, c),
		MarketInsights:   marketInsights(market),
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	if key != "" {
		s.cache.SetResult(ctx, key, result)
	}
	if s.events != nil {
		s.events.ConceptAnalyzed(ctx, result)
	}
	if s.metrics != nil {
		s.metrics.ObserveAnalysis(time.Since(start), string(band.Verdict))
		s.metrics.ObserveMatchCounts(len(buyers), len(producers), len(comparables))
	}

	s.logger.Info("concept analyzed",
		logging.String("genre", string(c.Genre)),
		logging.Int("loglineScore", breakdown.TotalLoglineScore),
		logging.Int("overallScore", final),
		logging.String("verdict", string(band.Verdict)),
		logging.Duration("elapsed", time.Since(start)))
	return result, nil
}
