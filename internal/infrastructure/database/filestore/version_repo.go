// Package filestore is the zero-dependency version store used by the CLI:
// one JSON document per project under a local directory.  The stored shape
// is the documented ConceptVersion schema, so files are portable to and from
// the postgres store.
package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// VersionRepository persists version history as per-project JSON files.
type VersionRepository struct {
	dir string
	mu  sync.Mutex
}

// NewVersionRepository creates the store directory if needed.
func NewVersionRepository(dir string) (*VersionRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "create version store directory")
	}
	return &VersionRepository{dir: dir}, nil
}

// path maps a project id to its history file, flattening separators so a
// crafted id cannot escape the store directory.
func (r *VersionRepository) path(projectID common.ProjectID) string {
	safe := strings.Map(func(c rune) rune {
		switch c {
		case '/', '\\', ':', '.':
			return '_'
		}
		return c
	}, string(projectID))
	return filepath.Join(r.dir, safe+".json")
}

// LoadVersions reads a project's history.  A missing file is an empty
// history, not an error.
func (r *VersionRepository) LoadVersions(ctx context.Context, projectID common.ProjectID) ([]version.ConceptVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTimeout, "version load cancelled")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return []version.ConceptVersion{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "read version history")
	}
	var history []version.ConceptVersion
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeVersionSchemaInvalid, "decode version history")
	}
	return history, nil
}

// AppendVersion rewrites the project file with the new version appended.
// The write goes through a temp file and rename so a crash never leaves a
// truncated history.
func (r *VersionRepository) AppendVersion(ctx context.Context, v version.ConceptVersion) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeTimeout, "version save cancelled")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(v.ProjectID)
	history := []version.ConceptVersion{}
	if raw, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(raw, &history); err != nil {
			return errors.Wrap(err, errors.ErrCodeVersionSchemaInvalid, "decode version history")
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "read version history")
	}

	if len(history) > 0 && history[len(history)-1].VersionNumber >= v.VersionNumber {
		return errors.New(errors.ErrCodeConflict, "version number already taken").
			WithDetail(string(v.ProjectID))
	}
	history = append(history, v)

	raw, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "encode version history")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "write version history")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, errors.ErrCodeVersionStoreFailed, "replace version history")
	}
	return nil
}
