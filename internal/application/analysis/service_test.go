package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	infracatalog "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/catalog"
)

type mockCache struct {
	store map[string]*domanalysis.AnalysisResult
	gets  int
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string]*domanalysis.AnalysisResult{}}
}

func (m *mockCache) GetResult(_ context.Context, key string) (*domanalysis.AnalysisResult, bool) {
	m.gets++
	r, ok := m.store[key]
	return r, ok
}

func (m *mockCache) SetResult(_ context.Context, key string, r *domanalysis.AnalysisResult) {
	m.sets++
	m.store[key] = r
}

type mockEvents struct {
	analyzed int
}

func (m *mockEvents) ConceptAnalyzed(context.Context, *domanalysis.AnalysisResult) { m.analyzed++ }

type mockMetrics struct {
	analyses int
	lookups  []bool
}

func (m *mockMetrics) ObserveAnalysis(time.Duration, string) { m.analyses++ }
func (m *mockMetrics) ObserveMatchCounts(int, int, int)      {}
func (m *mockMetrics) CacheLookup(hit bool)                  { m.lookups = append(m.lookups, hit) }

func thrillerConcept() concept.Concept {
	return concept.Concept{
		Logline:  "A disgraced FBI agent must stop a bomber before the city burns",
		Synopsis: "The agent begins a manhunt when the first device detonates; she discovers the bomber knows her past and must choose between the badge and her family.",
		Genre:    concept.GenreThriller,
		Format:   concept.FormatFeature,
		Tone:     "Relentless",
	}
}

func TestAnalyzeSeededCallsAreIdentical(t *testing.T) {
	svc := NewService(infracatalog.NewMemoryProvider(), nil, nil, nil, nil)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, thrillerConcept(), WithSeed(7))
	require.NoError(t, err)
	second, err := svc.Analyze(ctx, thrillerConcept(), WithSeed(7))
	require.NoError(t, err)

	// Everything except identity fields must be bit-identical.
	assert.NotEqual(t, first.ID, second.ID)
	second.ID = first.ID
	second.Timestamp = first.Timestamp
	assert.Equal(t, first, second)
}

func TestAnalyzeDifferentSeedsMayDiffOnlyWithinClamp(t *testing.T) {
	svc := NewService(infracatalog.NewMemoryProvider(), nil, nil, nil, nil)
	ctx := context.Background()

	for seed := int64(0); seed < 25; seed++ {
		r, err := svc.Analyze(ctx, thrillerConcept(), WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.FinalScore, domanalysis.MinFinalScore)
		assert.LessOrEqual(t, r.FinalScore, domanalysis.MaxFinalScore)
		require.NoError(t, r.Validate())
	}
}

func TestAnalyzeDegenerateConceptStillScores(t *testing.T) {
	svc := NewService(infracatalog.NewMemoryProvider(), nil, nil, nil, nil)
	r, err := svc.Analyze(context.Background(), concept.Concept{}, WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, domanalysis.MinFinalScore, r.FinalScore)
	assert.Equal(t, domanalysis.VerdictBackToDev, r.Verdict.Verdict)
	assert.NotEmpty(t, r.Feedback)
}

func TestAnalyzeCarriesMarketInsights(t *testing.T) {
	svc := NewService(infracatalog.NewMemoryProvider(), nil, nil, nil, nil)
	r, err := svc.Analyze(context.Background(), thrillerConcept(), WithSeed(4))
	require.NoError(t, err)

	require.NotEmpty(t, r.MarketInsights)
	assert.Contains(t, r.MarketInsights[0], "Thriller")
	assert.Equal(t, marketInsights(r.Market), r.MarketInsights)
}

func TestAnalyzeNormalizesConceptBeforeScoring(t *testing.T) {
	svc := NewService(infracatalog.NewMemoryProvider(), nil, nil, nil, nil)
	c := thrillerConcept()
	c.Genre = "thriller"
	c.Format = "feature"

	r, err := svc.Analyze(context.Background(), c, WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, concept.GenreThriller, r.Concept.Genre)
	assert.Equal(t, concept.FormatFeature, r.Concept.Format)
}

func TestAnalyzeUsesCacheForSeededCallsOnly(t *testing.T) {
	cache := newMockCache()
	metrics := &mockMetrics{}
	svc := NewService(infracatalog.NewMemoryProvider(), cache, nil, metrics, nil)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, thrillerConcept(), WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Analyze(ctx, thrillerConcept(), WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "a cache hit must not rewrite the entry")
	assert.Same(t, first, second)
	assert.Equal(t, []bool{false, true}, metrics.lookups)

	// Unseeded calls bypass the cache entirely.
	_, err = svc.Analyze(ctx, thrillerConcept(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets)
}

func TestAnalyzeCacheKeySeparatesSeedsAndConcepts(t *testing.T) {
	c := thrillerConcept().Normalize()
	other := c
	other.Logline += " tonight"

	assert.Equal(t, cacheKey(c, 1), cacheKey(c, 1))
	assert.NotEqual(t, cacheKey(c, 1), cacheKey(c, 2))
	assert.NotEqual(t, cacheKey(c, 1), cacheKey(other, 1))
}

func TestAnalyzePublishesEventsAndMetrics(t *testing.T) {
	events := &mockEvents{}
	metrics := &mockMetrics{}
	svc := NewService(infracatalog.NewMemoryProvider(), nil, events, metrics, nil)

	_, err := svc.Analyze(context.Background(), thrillerConcept(), WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 1, events.analyzed)
	assert.Equal(t, 1, metrics.analyses)
}
