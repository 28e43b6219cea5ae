// Package version defines the persisted concept-version entity, its exact
// JSON schema, the diff rules between consecutive versions, and the
// repository contract the development service depends on.
package version

import (
	"context"
	"fmt"
	"strings"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// ConceptVersion is one saved snapshot in a project's history.  The JSON
// field set and names are a stable schema: persisted versions round-trip
// byte-compatibly across releases.  ScoreDelta is a pointer so version 1,
// which has no predecessor, omits the field entirely rather than emitting 0.
type ConceptVersion struct {
	VersionID     common.ID        `json:"versionId"`
	ProjectID     common.ProjectID `json:"projectId"`
	VersionNumber int              `json:"versionNumber"`
	Timestamp     common.Timestamp `json:"timestamp"`

	Concept concept.Concept `json:"concept"`
	Score   int             `json:"score"`
	Verdict string          `json:"verdict"`

	ChangeDescription   string   `json:"changeDescription"`
	ChangesFromPrevious []string `json:"changesFromPrevious"`
	ScoreDelta          *int     `json:"scoreDelta,omitempty"`
}

// Validate checks the per-version schema invariants.
func (v ConceptVersion) Validate() error {
	if err := v.ProjectID.Validate(); err != nil {
		return errors.New(errors.ErrCodeProjectIDInvalid, err.Error())
	}
	if v.VersionNumber < 1 {
		return errors.New(errors.ErrCodeVersionSchemaInvalid,
			fmt.Sprintf("versionNumber %d must be >= 1", v.VersionNumber))
	}
	if v.VersionNumber == 1 && v.ScoreDelta != nil {
		return errors.New(errors.ErrCodeVersionSchemaInvalid, "version 1 must not carry a scoreDelta")
	}
	return nil
}

// ValidateHistory checks the gapless-monotonic invariant over a loaded
// history: version numbers must be exactly 1..n in order.  A violation means
// the store was corrupted or written by a buggy client; it fails loud.
func ValidateHistory(history []ConceptVersion) error {
	for i, v := range history {
		if v.VersionNumber != i+1 {
			return errors.New(errors.ErrCodeVersionGap,
				fmt.Sprintf("expected version %d at position %d, found %d", i+1, i, v.VersionNumber))
		}
	}
	return nil
}

// diffFields drives Diff: each tracked concept field with its display label
// and accessor.  Field order fixes the order of the changesFromPrevious list.
var diffFields = []struct {
	Label string
	Get   func(c concept.Concept) string
}{
	{"logline", func(c concept.Concept) string { return c.Logline }},
	{"synopsis", func(c concept.Concept) string { return c.Synopsis }},
	{"genre", func(c concept.Concept) string { return string(c.Genre) }},
	{"format", func(c concept.Concept) string { return string(c.Format) }},
	{"tone", func(c concept.Concept) string { return c.Tone }},
	{"target audience", func(c concept.Concept) string { return c.TargetAudience }},
	{"budget tier", func(c concept.Concept) string { return string(c.BudgetTier) }},
}

// Diff lists the human-readable field changes from prev to next.  Long text
// fields (logline, synopsis) report that they changed; short enum-like fields
// report the old and new values.
func Diff(prev, next concept.Concept) []string {
	changes := []string{}
	for _, f := range diffFields {
		was, now := strings.TrimSpace(f.Get(prev)), strings.TrimSpace(f.Get(next))
		if was == now {
			continue
		}
		switch f.Label {
		case "logline", "synopsis":
			changes = append(changes, fmt.Sprintf("%s revised", f.Label))
		default:
			changes = append(changes, fmt.Sprintf("%s changed from %q to %q", f.Label, was, now))
		}
	}
	return changes
}

// Repository is the storage contract for version history.  Implementations
// are append-only: versions are never rewritten or deleted.
type Repository interface {
	// LoadVersions returns a project's full history ordered by version
	// number ascending.  A project with no history returns an empty slice,
	// not an error.
	LoadVersions(ctx context.Context, projectID common.ProjectID) ([]ConceptVersion, error)

	// AppendVersion persists one new version.  The caller is responsible
	// for holding the per-project lock and for the gapless numbering.
	AppendVersion(ctx context.Context, v ConceptVersion) error
}
