package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTaskID matches an exact task id first, then a unique prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskAssignCmd(app),
		newTaskEditCmd(app),
		newTaskDeleteCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var cohort, phase string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for the active cohort",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}

			if cohort == "" && !all {
				cohort, err = app.Cohorts.Current(ctx)
				if err != nil {
					return err
				}
			}

			var filtered []domain.Task
			for _, t := range tasks {
				if cohort != "" && t.Cohort != cohort {
					continue
				}
				if phase != "" && string(t.Phase) != phase {
					continue
				}
				filtered = append(filtered, t)
			}

			fmt.Println(formatter.FormatTaskList(filtered))
			return nil
		},
	}

	cmd.Flags().StringVar(&cohort, "cohort", "", "Limit to one cohort")
	cmd.Flags().StringVar(&phase, "phase", "", "Limit to one phase (pre/during/post)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every cohort")

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, due, assignee, cohort string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an ad-hoc task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if cohort == "" {
				var err error
				cohort, err = app.Cohorts.Current(ctx)
				if err != nil {
					return err
				}
				if cohort == "" {
					return fmt.Errorf("no cohort selected; run gisu cohort select first")
				}
			}

			if (title == "" || due == "") && app.interactive() {
				if err := taskForm(&title, &due, &assignee).Run(); err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("a title is required")
			}
			if !domain.ValidYMD(due) {
				return fmt.Errorf("invalid due date %q: use YYYY-MM-DD", due)
			}

			added, err := app.Tasks.Add(ctx, app.currentUID(ctx), domain.Task{
				Cohort:   cohort,
				Title:    title,
				DueDate:  due,
				Assignee: assignee,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("%s (%s, %s)", added.Title, added.DueDate, formatter.PhaseBadge(added.Phase))))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee")
	cmd.Flags().StringVar(&cohort, "cohort", "", "Cohort (defaults to the active one)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a task's done state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			toggled, err := app.Tasks.Toggle(ctx, app.currentUID(ctx), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.Checkbox(toggled.Done), toggled.Title)
			return nil
		},
	}
}

func newTaskAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ID ASSIGNEE",
		Short: "Assign a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.SetAssignee(ctx, app.currentUID(ctx), id, args[1]); err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("담당자를 %s(으)로 지정했습니다.", args[1])))
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, due, phase, assignee string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			patch, err := patchFromFlags(cmd.Flags(), &title, &due, &phase, &assignee)
			if err != nil {
				return err
			}

			if patch == (domain.TaskPatch{}) {
				if !app.interactive() {
					return fmt.Errorf("nothing to change: pass --title, --due, --phase, or --assignee")
				}
				current, err := app.Tasks.GetByID(ctx, id)
				if err != nil {
					return err
				}
				title, due, assignee = current.Title, current.DueDate, current.Assignee
				if err := taskForm(&title, &due, &assignee).Run(); err != nil {
					return err
				}
				patch = domain.TaskPatch{Title: &title, DueDate: &due, Assignee: &assignee}
			}

			updated, err := app.Tasks.Update(ctx, app.currentUID(ctx), id, patch)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Success(fmt.Sprintf("%s (%s, %s)", updated.Title, updated.DueDate, formatter.PhaseBadge(updated.Phase))))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&phase, "phase", "", "New phase (pre/during/post)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "New assignee")

	return cmd
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	var dismiss bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Delete(ctx, app.currentUID(ctx), id, dismiss); err != nil {
				return err
			}
			if dismiss {
				fmt.Println(formatter.Success("삭제했고, 이 기수에서는 다시 만들지 않습니다."))
			} else {
				fmt.Println(formatter.Success("삭제했습니다."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "Also suppress re-materialization for this cohort")

	return cmd
}
