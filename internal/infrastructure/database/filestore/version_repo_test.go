package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

func testVersion(projectID common.ProjectID, number, score int) version.ConceptVersion {
	v := version.ConceptVersion{
		VersionID:           common.NewID(),
		ProjectID:           projectID,
		VersionNumber:       number,
		Timestamp:           common.NewTimestamp(),
		Concept:             concept.Concept{Logline: "A premise", Genre: concept.GenreDrama, Format: concept.FormatFeature},
		Score:               score,
		Verdict:             "Back to Development",
		ChangesFromPrevious: []string{},
	}
	if number > 1 {
		delta := 0
		v.ScoreDelta = &delta
	}
	return v
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	repo, err := NewVersionRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.AppendVersion(ctx, testVersion("p-42", 1, 40)))
	require.NoError(t, repo.AppendVersion(ctx, testVersion("p-42", 2, 45)))

	history, err := repo.LoadVersions(ctx, "p-42")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.NoError(t, version.ValidateHistory(history))
	assert.Equal(t, 40, history[0].Score)
	assert.Nil(t, history[0].ScoreDelta)
	assert.NotNil(t, history[1].ScoreDelta)
}

func TestLoadVersionsMissingProjectIsEmptyHistory(t *testing.T) {
	repo, err := NewVersionRepository(t.TempDir())
	require.NoError(t, err)

	history, err := repo.LoadVersions(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppendVersionRejectsDuplicateNumbers(t *testing.T) {
	repo, err := NewVersionRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.AppendVersion(ctx, testVersion("p-42", 1, 40)))
	err = repo.AppendVersion(ctx, testVersion("p-42", 1, 50))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConflict))
}

func TestProjectsAreIsolated(t *testing.T) {
	repo, err := NewVersionRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.AppendVersion(ctx, testVersion("alpha", 1, 40)))
	require.NoError(t, repo.AppendVersion(ctx, testVersion("beta", 1, 50)))

	a, err := repo.LoadVersions(ctx, "alpha")
	require.NoError(t, err)
	b, err := repo.LoadVersions(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, 40, a[0].Score)
	assert.Equal(t, 50, b[0].Score)
}

func TestPathSanitisationKeepsFilesInStoreDir(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewVersionRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	hostile := common.ProjectID("../../etc/passwd")
	require.NoError(t, repo.AppendVersion(ctx, testVersion(hostile, 1, 40)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dir, filepath.Dir(filepath.Join(dir, entries[0].Name())))

	history, err := repo.LoadVersions(ctx, hostile)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCancelledContextIsRejected(t *testing.T) {
	repo, err := NewVersionRepository(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.LoadVersions(ctx, "p-42")
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
	err = repo.AppendVersion(ctx, testVersion("p-42", 1, 40))
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
}
