package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var cohort string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive task board for the active cohort",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board needs an interactive terminal")
			}

			if cohort == "" {
				var err error
				cohort, err = app.Cohorts.Current(context.Background())
				if err != nil {
					return err
				}
			}

			p := tea.NewProgram(newBoardModel(app, cohort), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&cohort, "cohort", "", "Cohort to show (defaults to the active one)")

	return cmd
}
