// Package bridge reconciles the local SQLite cache with the per-user
// remote document, choosing the fresher copy by payload timestamp and
// bringing the stale side up to date. It never interprets task semantics.
package bridge

import (
	"context"
	"time"

	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/remote"
	"github.com/jaeyoonkim/gisu/internal/repository"
)

// LoadResult reports which tier served a load and whether the remote tier
// was unreachable (degraded mode: stale data is possible).
type LoadResult struct {
	Tasks    []domain.Task
	Source   Side
	Degraded bool
}

// Bridge composes the local cache and the remote store behind one
// load/save surface. A nil store means offline-only operation.
type Bridge struct {
	cache    repository.TaskCacheRepo
	settings repository.SettingsRepo
	store    remote.Store
	timeout  time.Duration
	now      func() int64
}

// New creates a Bridge. timeout bounds each remote fetch; zero means the
// default 8 seconds.
func New(cache repository.TaskCacheRepo, settings repository.SettingsRepo, store remote.Store, timeout time.Duration) *Bridge {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Bridge{
		cache:    cache,
		settings: settings,
		store:    store,
		timeout:  timeout,
		now:      domain.NowMillis,
	}
}

// LoadTasks resolves the freshest task list for uid.
//
// Remote unreachable: the cache serves, flagged degraded. Remote empty
// with local data: first-run migration, local is uploaded once and stays
// active. Remote fresher or equal: adopt remote and overwrite the cache.
// Local strictly newer: keep local and best-effort push it up; a failed
// push is swallowed because the next successful save retries it.
func (b *Bridge) LoadTasks(ctx context.Context, uid string) (*LoadResult, error) {
	local, err := b.cache.List(ctx)
	if err != nil {
		return nil, err
	}
	localAt, err := b.cache.UpdatedAt(ctx)
	if err != nil {
		return nil, err
	}

	if b.store == nil {
		return &LoadResult{Tasks: local, Source: SideLocal, Degraded: true}, nil
	}

	rctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	doc, err := b.store.Get(rctx, uid, remote.KeyTasks)
	if err != nil {
		return &LoadResult{Tasks: local, Source: SideLocal, Degraded: true}, nil
	}

	var payload remote.TaskList
	if doc != nil {
		if p, err := remote.DecodeTaskList(doc.Value); err == nil {
			payload = p
		}
		// Malformed payloads read as empty; the migration path below
		// restores the local copy to the remote side.
	}

	if len(payload.Tasks) == 0 && len(local) > 0 {
		migratedAt := localAt
		if migratedAt == 0 {
			migratedAt = b.now()
		}
		pushErr := b.store.Set(ctx, uid, remote.KeyTasks, remote.TaskList{Tasks: local, UpdatedAt: migratedAt})
		if err := b.cache.ReplaceAll(ctx, local, migratedAt); err != nil {
			return nil, err
		}
		return &LoadResult{Tasks: local, Source: SideLocal, Degraded: pushErr != nil}, nil
	}

	if Fresher(localAt, payload.UpdatedAt) == SideRemote {
		adoptedAt := payload.UpdatedAt
		if adoptedAt == 0 {
			adoptedAt = b.now()
		}
		if err := b.cache.ReplaceAll(ctx, payload.Tasks, adoptedAt); err != nil {
			return nil, err
		}
		return &LoadResult{Tasks: payload.Tasks, Source: SideRemote}, nil
	}

	// Local is strictly newer: push it up so other devices converge.
	_ = b.store.Set(ctx, uid, remote.KeyTasks, remote.TaskList{Tasks: local, UpdatedAt: localAt})
	return &LoadResult{Tasks: local, Source: SideLocal}, nil
}

// Reload re-runs LoadTasks; callers use it after regaining connectivity
// to pull changes made on other devices.
func (b *Bridge) Reload(ctx context.Context, uid string) (*LoadResult, error) {
	return b.LoadTasks(ctx, uid)
}

// SaveTasks writes tasks to the cache with a fresh timestamp, then to the
// remote store. An empty list is saved like any other: deletions must
// propagate. The returned synced flag is false when only the cache was
// written; the remote copy catches up on the next save or reload.
func (b *Bridge) SaveTasks(ctx context.Context, uid string, tasks []domain.Task) (synced bool, err error) {
	updatedAt := b.now()
	if err := b.cache.ReplaceAll(ctx, tasks, updatedAt); err != nil {
		return false, err
	}

	if b.store == nil || uid == "" {
		return false, nil
	}
	if err := b.store.Set(ctx, uid, remote.KeyTasks, remote.TaskList{Tasks: tasks, UpdatedAt: updatedAt}); err != nil {
		return false, nil
	}
	return true, nil
}

// LoadCohort resolves the selected cohort: remote copy when present,
// otherwise the local setting, which is uploaded once when the remote
// side has none (first-run migration).
func (b *Bridge) LoadCohort(ctx context.Context, uid string) (string, error) {
	local, err := b.settings.Get(ctx, repository.SettingCohort)
	if err != nil {
		return "", err
	}
	if b.store == nil {
		return local, nil
	}

	rctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	doc, err := b.store.Get(rctx, uid, remote.KeyCohort)
	if err != nil || doc == nil {
		if err == nil && local != "" {
			_ = b.store.Set(ctx, uid, remote.KeyCohort, local)
		}
		return local, nil
	}

	cohort, err := remote.DecodeCohort(doc.Value)
	if err != nil || cohort == "" {
		return local, nil
	}
	if err := b.settings.Set(ctx, repository.SettingCohort, cohort); err != nil {
		return "", err
	}
	return cohort, nil
}

// SaveCohort persists the cohort selection to both tiers. An empty
// selection is not saved.
func (b *Bridge) SaveCohort(ctx context.Context, uid, cohort string) error {
	if cohort == "" {
		return nil
	}
	if err := b.settings.Set(ctx, repository.SettingCohort, cohort); err != nil {
		return err
	}
	if b.store != nil && uid != "" {
		_ = b.store.Set(ctx, uid, remote.KeyCohort, cohort)
	}
	return nil
}
