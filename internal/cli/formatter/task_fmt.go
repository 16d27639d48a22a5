package formatter

import (
	"fmt"
	"strings"

	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/domain"
)

// Checkbox renders the done marker for a task.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// ShortID abbreviates long task IDs for table display. Deterministic
// seed IDs are already readable; random custom IDs get truncated.
func ShortID(id string) string {
	if strings.HasPrefix(id, "custom:") && len(id) > 15 {
		return id[:15]
	}
	return id
}

// FormatTaskList renders tasks as a table grouped under their cohort
// label. Done tasks render dimmed.
func FormatTaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("할 일이 없습니다.")
	}

	byCohort := map[string][]domain.Task{}
	var order []string
	for _, t := range tasks {
		if _, seen := byCohort[t.Cohort]; !seen {
			order = append(order, t.Cohort)
		}
		byCohort[t.Cohort] = append(byCohort[t.Cohort], t)
	}

	var sections []string
	for _, cohort := range order {
		rows := make([][]string, 0, len(byCohort[cohort]))
		for _, t := range byCohort[cohort] {
			title := t.Title
			if t.Done {
				title = Dim(title)
			}
			rows = append(rows, []string{
				Checkbox(t.Done),
				ShortID(t.ID),
				title,
				t.DueDate,
				PhaseBadge(t.Phase),
				t.Assignee,
			})
		}
		table := RenderTable([]string{"", "ID", "할 일", "마감", "단계", "담당"}, rows)
		sections = append(sections, Header(catalog.LabelFor(cohort))+"\n"+table)
	}
	return strings.Join(sections, "\n\n")
}

// FormatTemplateList renders custom templates as a table.
func FormatTemplateList(templates []domain.CustomTemplate) string {
	if len(templates) == 0 {
		return Dim("등록된 템플릿이 없습니다.")
	}

	rows := make([][]string, 0, len(templates))
	for _, tpl := range templates {
		rows = append(rows, []string{
			ShortID(tpl.ID),
			tpl.Title,
			PhaseBadge(tpl.Phase),
			tpl.Assignee,
			fmt.Sprintf("%s기 시작 %+d일", tpl.BaseCohort, tpl.OffsetDays),
		})
	}
	return RenderTable([]string{"ID", "템플릿", "단계", "담당", "기준"}, rows)
}
