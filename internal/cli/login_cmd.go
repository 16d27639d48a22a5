package cli

import (
	"context"
	"fmt"

	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/jaeyoonkim/gisu/internal/repository"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login USER_ID",
		Short: "Sign in and pull this user's data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			uid := args[0]

			if err := app.Settings.Set(ctx, repository.SettingUserID, uid); err != nil {
				return fmt.Errorf("storing user id: %w", err)
			}
			if err := app.Session.Begin(uid); err != nil {
				return err
			}

			result, err := app.Bridge.LoadTasks(ctx, uid)
			if err != nil {
				return err
			}
			if err := app.Session.Complete(result.Degraded); err != nil {
				return err
			}

			if cohort, err := app.Cohorts.Load(ctx, uid); err == nil && cohort != "" {
				if _, err := app.Cohorts.Materialize(ctx, uid, cohort); err != nil {
					return err
				}
			}

			if result.Degraded {
				fmt.Println(formatter.Warn(fmt.Sprintf("%s(으)로 로그인했지만 서버에 연결할 수 없어 로컬 데이터로 동작합니다.", uid)))
				return nil
			}
			fmt.Println(formatter.Success(fmt.Sprintf("%s(으)로 로그인했습니다. 할 일 %d개를 불러왔습니다.", uid, len(result.Tasks))))
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out (local data is kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Settings.Delete(ctx, repository.SettingUserID); err != nil {
				return fmt.Errorf("clearing user id: %w", err)
			}
			if err := app.Session.SignOut(); err != nil {
				return err
			}
			fmt.Println(formatter.Success("로그아웃했습니다."))
			return nil
		},
	}
}
