package cli

import (
	"testing"
	"time"

	"github.com/jaeyoonkim/gisu/internal/bridge"
	"github.com/jaeyoonkim/gisu/internal/repository"
	"github.com/jaeyoonkim/gisu/internal/service"
	"github.com/jaeyoonkim/gisu/internal/testutil"
)

// newTestApp wires an App over an in-memory stack with a fake remote.
func newTestApp(t *testing.T) (*App, *testutil.FakeRemote) {
	t.Helper()
	db := testutil.NewTestDB(t)

	remote := testutil.NewFakeRemote()
	cache := repository.NewSQLiteTaskCacheRepo(db)
	settings := repository.NewSQLiteSettingsRepo(db)
	templates := repository.NewSQLiteCustomTemplateRepo(db)
	dismissals := repository.NewSQLiteDismissalRepo(db)
	seeds := repository.NewSQLiteSeedMarkRepo(db)
	holidays := repository.NewSQLiteHolidayCacheRepo(db)

	b := bridge.New(cache, settings, remote, time.Second)
	app := &App{
		Tasks:         service.NewTaskService(cache, templates, dismissals, b),
		Cohorts:       service.NewCohortService(settings, cache, templates, dismissals, seeds, b),
		Holidays:      service.NewHolidayService(holidays, t.TempDir(), nil),
		Session:       service.NewSession(),
		Settings:      settings,
		Bridge:        b,
		IsInteractive: func() bool { return false },
	}
	return app, remote
}
