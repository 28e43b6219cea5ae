// Package repositories holds the postgres-backed implementations of the
// domain repository interfaces.
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// uniqueViolation is the postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// VersionRepository is the append-only postgres version store.  The full
// ConceptVersion is persisted as its documented JSON schema in a JSONB
// column, so the stored shape round-trips exactly.
type VersionRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewVersionRepository constructs the repository.
func NewVersionRepository(pool *pgxpool.Pool, logger logging.Logger) *VersionRepository {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &VersionRepository{pool: pool, logger: logger.Named("version_repo")}
}

// LoadVersions returns a project's history ordered by version number.
func (r *VersionRepository) LoadVersions(ctx context.Context, projectID common.ProjectID) ([]version.ConceptVersion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT payload FROM concept_versions WHERE project_id = $1 ORDER BY version_number`,
		string(projectID))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "query version history")
	}
	defer rows.Close()

	history := []version.ConceptVersion{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "scan version row")
		}
		var v version.ConceptVersion
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeVersionSchemaInvalid, "decode stored version")
		}
		history = append(history, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "iterate version rows")
	}
	return history, nil
}

// AppendVersion inserts one new version.  A duplicate (project, number) pair
// means a concurrent writer won the slot; surfaced as a conflict.
func (r *VersionRepository) AppendVersion(ctx context.Context, v version.ConceptVersion) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "encode version")
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO concept_versions (version_id, project_id, version_number, created_at, payload)
		 VALUES ($1, $2, $3, $4, $5)`,
		string(v.VersionID), string(v.ProjectID), v.VersionNumber, v.Timestamp.Time(), payload)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errors.New(errors.ErrCodeConflict, "version number already taken").
				WithDetail(string(v.ProjectID)).WithCause(err)
		}
		return errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "insert version")
	}
	return nil
}

// LatestVersion returns the newest version for a project, or a not-found
// error when the project has no history.
func (r *VersionRepository) LatestVersion(ctx context.Context, projectID common.ProjectID) (version.ConceptVersion, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM concept_versions WHERE project_id = $1 ORDER BY version_number DESC LIMIT 1`,
		string(projectID)).Scan(&raw)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return version.ConceptVersion{}, errors.New(errors.ErrCodeVersionNotFound, "no versions for project").
				WithDetail(string(projectID))
		}
		return version.ConceptVersion{}, errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "query latest version")
	}
	var v version.ConceptVersion
	if err := json.Unmarshal(raw, &v); err != nil {
		return version.ConceptVersion{}, errors.Wrap(err, errors.ErrCodeVersionSchemaInvalid, "decode stored version")
	}
	return v, nil
}
