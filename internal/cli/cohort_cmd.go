package cli

import (
	"context"
	"fmt"

	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCohortCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cohort",
		Short: "Show and select the active cohort",
	}

	cmd.AddCommand(
		newCohortListCmd(app),
		newCohortSelectCmd(app),
	)

	return cmd
}

func newCohortListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known cohorts and their program windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Cohorts.Current(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(catalog.Cohorts))
			for _, c := range catalog.Cohorts {
				sched := catalog.Schedules[c.Key]
				marker := ""
				if c.Key == current {
					marker = formatter.StyleGreen.Render("●")
				}
				rows = append(rows, []string{marker, c.Label, sched.Start(), sched.End()})
			}
			fmt.Println(formatter.RenderTable([]string{"", "기수", "시작", "종료"}, rows))
			return nil
		},
	}
}

func newCohortSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select [COHORT]",
		Short: "Select a cohort and materialize its checklist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var cohort string
			if len(args) == 1 {
				cohort = args[0]
			} else {
				if !app.interactive() {
					return fmt.Errorf("cohort key is required (e.g. gisu cohort select 33)")
				}
				form := cohortSelectForm(&cohort)
				if err := form.Run(); err != nil {
					return err
				}
			}

			uid := app.currentUID(ctx)
			if err := app.Cohorts.Select(ctx, uid, cohort); err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("%s 기수를 선택했습니다.", catalog.LabelFor(cohort))))
			return nil
		},
	}
}
