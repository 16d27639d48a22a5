package cli

import (
	"context"
	"fmt"

	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local cache with the remote copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			uid := app.currentUID(ctx)
			if uid == "" {
				fmt.Println(formatter.Warn("로그인하지 않아 로컬 데이터만 사용합니다. gisu login <id>"))
				return nil
			}

			stop := formatter.StartSpinner("서버와 동기화하는 중")
			result, err := app.Bridge.Reload(ctx, uid)
			stop()
			if err != nil {
				return err
			}

			if cohort, err := app.Cohorts.Load(ctx, uid); err == nil && cohort != "" {
				if _, err := app.Cohorts.Materialize(ctx, uid, cohort); err != nil {
					return err
				}
			}

			if result.Degraded {
				fmt.Println(formatter.Warn("서버에 연결할 수 없어 로컬 데이터로 동작합니다."))
				return nil
			}
			fmt.Println(formatter.Success(fmt.Sprintf("동기화 완료: 할 일 %d개 (%s 기준)", len(result.Tasks), result.Source)))
			return nil
		},
	}
}
