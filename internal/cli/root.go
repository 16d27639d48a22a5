package cli

import (
	"context"

	"github.com/jaeyoonkim/gisu/internal/bridge"
	"github.com/jaeyoonkim/gisu/internal/repository"
	"github.com/jaeyoonkim/gisu/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Cohorts  service.CohortService
	Holidays service.HolidayService
	Session  *service.Session
	Settings repository.SettingsRepo
	Bridge   *bridge.Bridge

	// IsInteractive gates huh forms and the board TUI; non-TTY runs fall
	// back to flag-only operation.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// currentUID returns the signed-in user id, or "" when signed out.
// Signed-out operation is valid: everything stays in the local cache.
func (a *App) currentUID(ctx context.Context) string {
	uid, err := a.Settings.Get(ctx, repository.SettingUserID)
	if err != nil {
		return ""
	}
	return uid
}

// NewRootCmd creates the top-level "gisu" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gisu",
		Short: "Cohort checklist and schedule manager",
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newCohortCmd(app),
		newTaskCmd(app),
		newTemplateCmd(app),
		newCalendarCmd(app),
		newSyncCmd(app),
		newBoardCmd(app),
	)

	return root
}
