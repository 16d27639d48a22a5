package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jaeyoonkim/gisu/internal/domain"
)

// patchFromFlags builds a TaskPatch from the flags the user actually set.
// A nil field pointer means the command does not expose that flag. Due
// dates and phases are validated here so every edit surface rejects the
// same inputs.
func patchFromFlags(flags *pflag.FlagSet, title, due, phase, assignee *string) (domain.TaskPatch, error) {
	var patch domain.TaskPatch
	if title != nil && flags.Changed("title") {
		patch.Title = title
	}
	if due != nil && flags.Changed("due") {
		if !domain.ValidYMD(*due) {
			return patch, fmt.Errorf("invalid due date %q: use YYYY-MM-DD", *due)
		}
		patch.DueDate = due
	}
	if phase != nil && flags.Changed("phase") {
		if !domain.ValidPhases[*phase] {
			return patch, fmt.Errorf("invalid phase %q: use pre, during, or post", *phase)
		}
		p := domain.Phase(*phase)
		patch.Phase = &p
	}
	if assignee != nil && flags.Changed("assignee") {
		patch.Assignee = assignee
	}
	return patch, nil
}
