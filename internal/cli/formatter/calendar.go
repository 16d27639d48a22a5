package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/holiday"
)

var weekdayHeaders = []string{"일", "월", "화", "수", "목", "금", "토"}

const dayCellWidth = 6

// FormatMonth renders a month grid. Holidays color their day red and are
// listed under the grid; days with due tasks carry a bullet and the due
// titles are listed as well.
func FormatMonth(year int, month time.Month, tasks []domain.Task, holidays []holiday.Holiday) string {
	holidayByDate := map[string][]holiday.Holiday{}
	for _, h := range holidays {
		holidayByDate[h.Date] = append(holidayByDate[h.Date], h)
	}
	dueByDate := map[string][]domain.Task{}
	for _, t := range tasks {
		dueByDate[t.DueDate] = append(dueByDate[t.DueDate], t)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d년 %d월", year, int(month))))
	b.WriteString("\n")

	for i, wd := range weekdayHeaders {
		style := StyleFg
		if i == 0 {
			style = StyleRed
		}
		if i == 6 {
			style = StyleBlue
		}
		b.WriteString(padCell(style.Render(wd), lipgloss.Width(wd)))
	}
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Leading blanks up to the first weekday.
	col := int(first.Weekday())
	b.WriteString(strings.Repeat(" ", col*dayCellWidth))

	var notes []string
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		dayHolidays := holidayByDate[date]
		dayTasks := dueByDate[date]

		style := StyleFg
		switch {
		case len(dayHolidays) > 0, col == 0:
			style = StyleRed
		case col == 6:
			style = StyleBlue
		}

		cell := fmt.Sprintf("%2d", day)
		if len(dayTasks) > 0 {
			cell += "•"
		}
		b.WriteString(padCell(style.Render(cell), lipgloss.Width(cell)))

		for _, h := range dayHolidays {
			notes = append(notes, fmt.Sprintf("%s  %s", date, StyleRed.Render(h.Name)))
		}
		for _, t := range dayTasks {
			marker := Checkbox(t.Done)
			notes = append(notes, fmt.Sprintf("%s  %s %s", date, marker, t.Title))
		}

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	if len(notes) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(notes, "\n"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// padCell right-pads a styled cell to the fixed grid width using the
// visible width of the unstyled content.
func padCell(rendered string, visible int) string {
	pad := dayCellWidth - visible
	if pad < 1 {
		pad = 1
	}
	return rendered + strings.Repeat(" ", pad)
}
