package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	infracatalog "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/redis"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

func startRedis(t *testing.T) redis.Config {
	t.Helper()
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}, "6379/tcp")
	return redis.Config{Addr: fmt.Sprintf("%s:%d", host, port)}
}

func TestRedisResultCacheRoundTrip(t *testing.T) {
	requireIntegration(t)

	ctx := context.Background()
	client, err := redis.NewClient(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := redis.NewResultCache(client, nil)

	_, ok := cache.GetResult(ctx, "analysis:absent")
	assert.False(t, ok)

	svc := appanalysis.NewService(infracatalog.NewMemoryProvider(), nil, nil, nil, nil)
	result, err := svc.Analyze(ctx, concept.Concept{
		Logline: "A disgraced FBI agent must stop a bomber before the city burns",
		Genre:   concept.GenreThriller,
		Format:  concept.FormatFeature,
	}, appanalysis.WithSeed(7))
	require.NoError(t, err)

	cache.SetResult(ctx, "analysis:probe", result)
	loaded, ok := cache.GetResult(ctx, "analysis:probe")
	require.True(t, ok)
	assert.Equal(t, result.ID, loaded.ID)
	assert.Equal(t, result.FinalScore, loaded.FinalScore)
	assert.Equal(t, result.Verdict, loaded.Verdict)
	assert.Equal(t, result.Logline, loaded.Logline)
	assert.Equal(t, result.BuyerMatches, loaded.BuyerMatches)
}

func TestRedisProjectLockerExcludesConcurrentWriters(t *testing.T) {
	requireIntegration(t)

	ctx := context.Background()
	client, err := redis.NewClient(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	locker := redis.NewProjectLocker(client, nil)

	release, err := locker.Lock(ctx, "proj-a")
	require.NoError(t, err)

	// A second writer on the same project times out while the lock is held.
	shortCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(shortCtx, "proj-a")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeVersionLockFailed))

	// Another project is not blocked.
	otherRelease, err := locker.Lock(ctx, "proj-b")
	require.NoError(t, err)
	otherRelease()

	release()
	release2, err := locker.Lock(ctx, "proj-a")
	require.NoError(t, err)
	release2()
}
