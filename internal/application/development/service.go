// Package development is the stateful layer above the scoring pipeline:
// version history, A/B comparison, what-if simulation, and logline rewrite
// suggestions.  Scoring itself stays pure; only version-history load/save
// touches I/O, and that I/O fails soft.
package development

import (
	"context"
	"time"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// defaultIOTimeout bounds every version-store round trip.
const defaultIOTimeout = 5 * time.Second

// ProjectLocker guards the load→mutate→save critical section per project.
// Implementations are best-effort: a distributed lock when redis is present,
// a local mutex otherwise.
type ProjectLocker interface {
	// Lock acquires the project's lock and returns its release func.
	Lock(ctx context.Context, projectID common.ProjectID) (func(), error)
}

// VersionEvents receives best-effort notifications after a version persists.
type VersionEvents interface {
	VersionSaved(ctx context.Context, v version.ConceptVersion)
}

// Service is the concept development orchestrator.
type Service struct {
	analyzer *appanalysis.Service
	repo     version.Repository
	locker   ProjectLocker
	events   VersionEvents // optional
	logger   logging.Logger
	timeout  time.Duration
}

// NewService constructs the development service.  events may be nil.
func NewService(analyzer *appanalysis.Service, repo version.Repository, locker ProjectLocker, events VersionEvents, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		analyzer: analyzer,
		repo:     repo,
		locker:   locker,
		events:   events,
		logger:   logger.Named("development"),
		timeout:  defaultIOTimeout,
	}
}

// SaveOutcome reports one saveVersion call.  Persisted is false when the
// store was unavailable; the version and its analysis are still returned so
// the caller's primary flow never blocks on storage.
type SaveOutcome struct {
	Version   version.ConceptVersion       `json:"version"`
	Result    *domanalysis.AnalysisResult  `json:"result"`
	Persisted bool                         `json:"persisted"`
}

// History returns a project's full version history, oldest first.  A storage
// failure degrades to an empty history rather than an error; a corrupted
// history (gapped version numbers) fails loud.
func (s *Service) History(ctx context.Context, projectID common.ProjectID) ([]version.ConceptVersion, error) {
	if err := projectID.Validate(); err != nil {
		return nil, err
	}
	ioCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	history, err := s.repo.LoadVersions(ioCtx, projectID)
	if err != nil {
		s.logger.Warn("version history unavailable, treating as empty",
			logging.String("projectId", string(projectID)), logging.Err(err))
		return []version.ConceptVersion{}, nil
	}
	if err := version.ValidateHistory(history); err != nil {
		return nil, err
	}
	return history, nil
}

// SaveVersion analyzes the concept and appends it to the project's history
// with version number = prior count + 1.  The load→mutate→save sequence runs
// under the per-project lock.  scoreDelta is computed against the immediately
// preceding version and omitted for version 1.
func (s *Service) SaveVersion(ctx context.Context, projectID common.ProjectID, c concept.Concept, changeDescription string, opts appanalysis.Options) (SaveOutcome, error) {
	if err := projectID.Validate(); err != nil {
		return SaveOutcome{}, err
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, projectID)
		if err != nil {
			s.logger.Warn("project lock unavailable, proceeding unguarded",
				logging.String("projectId", string(projectID)), logging.Err(err))
		} else {
			defer unlock()
		}
	}

	history, err := s.History(ctx, projectID)
	if err != nil {
		return SaveOutcome{}, err
	}

	result, err := s.analyzer.Analyze(ctx, c, opts)
	if err != nil {
		return SaveOutcome{}, err
	}

	v := version.ConceptVersion{
		VersionID:           common.NewID(),
		ProjectID:           projectID,
		VersionNumber:       len(history) + 1,
		Timestamp:           common.NewTimestamp(),
		Concept:             result.Concept,
		Score:               result.FinalScore,
		Verdict:             string(result.Verdict.Verdict),
		ChangeDescription:   changeDescription,
		ChangesFromPrevious: []string{},
	}
	if len(history) > 0 {
		prev := history[len(history)-1]
		delta := result.FinalScore - prev.Score
		v.ScoreDelta = &delta
		v.ChangesFromPrevious = version.Diff(prev.Concept, result.Concept)
	}
	if err := v.Validate(); err != nil {
		return SaveOutcome{}, err
	}

	persisted := true
	ioCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.repo.AppendVersion(ioCtx, v); err != nil {
		persisted = false
		s.logger.Warn("version save failed, continuing without persistence",
			logging.String("projectId", string(projectID)),
			logging.Int("versionNumber", v.VersionNumber),
			logging.Err(err))
	} else if s.events != nil {
		s.events.VersionSaved(ctx, v)
	}

	return SaveOutcome{Version: v, Result: result, Persisted: persisted}, nil
}
