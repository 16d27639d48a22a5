package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/jaeyoonkim/gisu/internal/domain"
)

// gisuHuhTheme returns a huh theme matching the formatter palette.
func gisuHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if !domain.ValidYMD(s) {
		return fmt.Errorf("YYYY-MM-DD 형식으로 입력하세요")
	}
	return nil
}

// cohortSelectForm builds a select over the known cohorts.
func cohortSelectForm(result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(catalog.Cohorts))
	for _, c := range catalog.Cohorts {
		options = append(options, huh.NewOption(c.Label, c.Key))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("기수 선택").
				Options(options...).
				Value(result),
		),
	).WithTheme(gisuHuhTheme()).WithShowHelp(false)
}

// taskForm collects the fields of a new or edited task. Prefilled values
// show as the current input.
func taskForm(title, due, assignee *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("할 일").
				Placeholder("수료식 리허설").
				Value(title),
			huh.NewInput().
				Title("마감일 (YYYY-MM-DD)").
				Placeholder("2026-04-30").
				Value(due).
				Validate(validateDate),
			huh.NewInput().
				Title("담당자 (선택)").
				Value(assignee),
		),
	).WithTheme(gisuHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("예").
				Negative("아니요").
				Value(result),
		),
	).WithTheme(gisuHuhTheme()).WithShowHelp(false)
}
