package service

import (
	"context"
	"testing"
	"time"

	"github.com/jaeyoonkim/gisu/internal/bridge"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/repository"
	"github.com/jaeyoonkim/gisu/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testUID = "user-1"

// fixture wires a full in-memory stack: SQLite cache, fake remote, the
// bridge, and both services on top.
type fixture struct {
	remote     *testutil.FakeRemote
	cache      repository.TaskCacheRepo
	settings   repository.SettingsRepo
	templates  repository.CustomTemplateRepo
	dismissals repository.DismissalRepo
	seeds      repository.SeedMarkRepo
	bridge     *bridge.Bridge
	tasks      TaskService
	cohorts    CohortService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	f := &fixture{
		remote:     testutil.NewFakeRemote(),
		cache:      repository.NewSQLiteTaskCacheRepo(db),
		settings:   repository.NewSQLiteSettingsRepo(db),
		templates:  repository.NewSQLiteCustomTemplateRepo(db),
		dismissals: repository.NewSQLiteDismissalRepo(db),
		seeds:      repository.NewSQLiteSeedMarkRepo(db),
	}
	f.bridge = bridge.New(f.cache, f.settings, f.remote, time.Second)
	f.tasks = NewTaskService(f.cache, f.templates, f.dismissals, f.bridge)
	f.cohorts = NewCohortService(f.settings, f.cache, f.templates, f.dismissals, f.seeds, f.bridge)
	return f
}

// seedCache puts tasks straight into the local cache, bypassing services.
func (f *fixture) seedCache(t *testing.T, tasks ...domain.Task) {
	t.Helper()
	require.NoError(t, f.cache.ReplaceAll(context.Background(), tasks, domain.NowMillis()))
}

func (f *fixture) cached(t *testing.T) []domain.Task {
	t.Helper()
	tasks, err := f.cache.List(context.Background())
	require.NoError(t, err)
	return tasks
}

func findTask(tasks []domain.Task, id string) *domain.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
