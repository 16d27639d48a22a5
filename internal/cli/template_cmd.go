package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTemplateID matches an exact template id first, then a unique
// prefix, then a unique exact title.
func resolveTemplateID(ctx context.Context, app *App, input string) (string, error) {
	templates, err := app.Tasks.Templates(ctx)
	if err != nil {
		return "", err
	}

	for _, tpl := range templates {
		if tpl.ID == input {
			return tpl.ID, nil
		}
	}

	var matches []string
	for _, tpl := range templates {
		if strings.HasPrefix(tpl.ID, input) || tpl.Title == input {
			matches = append(matches, tpl.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("template not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("template %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable task templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplatePromoteCmd(app),
		newTemplateApplyAllCmd(app),
		newTemplateUpdateAllCmd(app),
		newTemplateDeleteAllCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Tasks.Templates(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTemplateList(templates))
			return nil
		},
	}
}

func newTemplatePromoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "promote TASK_ID",
		Short: "Turn an existing task into a reusable template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			tpl, err := app.Tasks.PromoteToTemplate(ctx, app.currentUID(ctx), id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("템플릿으로 등록: %s (%s기 시작 %+d일)", tpl.Title, tpl.BaseCohort, tpl.OffsetDays)))
			return nil
		},
	}
}

func newTemplateApplyAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply-all TEMPLATE",
		Short: "Create the template's task in every cohort",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTemplateID(ctx, app, args[0])
			if err != nil {
				return err
			}

			count, err := app.Tasks.ApplyTemplateToAllCohorts(ctx, app.currentUID(ctx), id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("%d개 기수에 할 일을 만들었습니다.", count)))
			return nil
		},
	}
}

func newTemplateUpdateAllCmd(app *App) *cobra.Command {
	var title, assignee, phase string

	cmd := &cobra.Command{
		Use:   "update-all TEMPLATE",
		Short: "Update the template and its tasks in every cohort",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTemplateID(ctx, app, args[0])
			if err != nil {
				return err
			}

			patch, err := patchFromFlags(cmd.Flags(), &title, nil, &phase, &assignee)
			if err != nil {
				return err
			}
			if patch == (domain.TaskPatch{}) {
				return fmt.Errorf("nothing to change: pass --title, --assignee, or --phase")
			}

			count, err := app.Tasks.BulkUpdateByTemplate(ctx, app.currentUID(ctx), id, patch)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("할 일 %d개를 함께 수정했습니다.", count)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&assignee, "assignee", "", "New assignee")
	cmd.Flags().StringVar(&phase, "phase", "", "New phase (pre/during/post)")

	return cmd
}

func newTemplateDeleteAllCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all TEMPLATE",
		Short: "Delete the template and its tasks in every cohort",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTemplateID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("pass --yes to delete without confirmation")
				}
				confirmed := false
				if err := confirmForm("모든 기수에서 이 템플릿의 할 일을 삭제할까요?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(formatter.Dim("취소했습니다."))
					return nil
				}
			}

			count, err := app.Tasks.BulkDeleteByTemplate(ctx, app.currentUID(ctx), id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("템플릿과 할 일 %d개를 삭제했습니다.", count)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
