package redis

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

const (
	lockKeyPrefix   = "greenlight:lock:project:"
	lockTTL         = 10 * time.Second
	lockRetryDelay  = 50 * time.Millisecond
	lockMaxAttempts = 40
)

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// ProjectLocker guards the per-project load→mutate→save sequence with a
// redis SET NX lock.  It satisfies the development service's ProjectLocker
// interface.
type ProjectLocker struct {
	client *redis.Client
	logger logging.Logger
}

// NewProjectLocker constructs a redis-backed locker.
func NewProjectLocker(client *redis.Client, logger logging.Logger) *ProjectLocker {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ProjectLocker{client: client, logger: logger.Named("lock")}
}

// Lock acquires the project lock, retrying with a short delay until the
// attempt budget or the context runs out.
func (l *ProjectLocker) Lock(ctx context.Context, projectID common.ProjectID) (func(), error) {
	key := lockKeyPrefix + string(projectID)
	token := uuid.NewString()

	for attempt := 0; attempt < lockMaxAttempts; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeVersionLockFailed, "redis lock acquire failed")
		}
		if ok {
			return func() {
				relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := releaseScript.Run(relCtx, l.client, []string{key}, token).Err(); err != nil {
					l.logger.Warn("lock release failed, relying on TTL expiry",
						logging.String("projectId", string(projectID)), logging.Err(err))
				}
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), errors.ErrCodeVersionLockFailed, "context cancelled waiting for lock")
		case <-time.After(lockRetryDelay):
		}
	}
	return nil, errors.New(errors.ErrCodeVersionLockFailed, "lock attempt budget exhausted").
		WithDetail("project " + string(projectID))
}

// LocalLocker is the in-process fallback when redis is not configured: one
// mutex per project id.  Correct for the single-process deployment the
// engine targets.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[common.ProjectID]*sync.Mutex
}

// NewLocalLocker constructs a LocalLocker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: map[common.ProjectID]*sync.Mutex{}}
}

// Lock acquires the project's mutex.
func (l *LocalLocker) Lock(_ context.Context, projectID common.ProjectID) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[projectID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[projectID] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock, nil
}
