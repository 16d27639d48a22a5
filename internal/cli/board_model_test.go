package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedBoard(t *testing.T, app *App, cohort string, tasks ...domain.Task) *boardModel {
	t.Helper()
	m := newBoardModel(app, cohort)
	next, _ := m.Update(boardLoadedMsg{tasks: tasks})
	return next.(*boardModel)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "space" {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardModel_LoadingView(t *testing.T) {
	app, _ := newTestApp(t)
	m := newBoardModel(app, "32")

	assert.Contains(t, m.View(), "불러오는 중")
}

func TestBoardModel_ShowsTasksAfterLoad(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Cohorts.Select(ctx, "", "32"))
	tasks, err := app.Tasks.List(ctx)
	require.NoError(t, err)

	m := loadedBoard(t, app, "32", tasks...)

	view := m.View()
	assert.Contains(t, view, "수료증 준비")
	assert.NotContains(t, view, "불러오는 중")
}

func TestBoardModel_FiltersOtherCohorts(t *testing.T) {
	app, _ := newTestApp(t)
	m := loadedBoard(t, app, "32",
		domain.Task{ID: "a", Cohort: "32", Title: "우리 것", DueDate: "2026-03-01"},
		domain.Task{ID: "b", Cohort: "33", Title: "남의 것", DueDate: "2026-06-01"},
	)

	view := m.View()
	assert.Contains(t, view, "우리 것")
	assert.NotContains(t, view, "남의 것")
}

func TestBoardModel_CursorStaysInBounds(t *testing.T) {
	app, _ := newTestApp(t)
	m := loadedBoard(t, app, "32",
		domain.Task{ID: "a", Cohort: "32", Title: "하나", DueDate: "2026-03-01"},
		domain.Task{ID: "b", Cohort: "32", Title: "둘", DueDate: "2026-03-02"},
	)

	next, _ := m.Update(keyMsg("j"))
	m = next.(*boardModel)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg("j"))
	m = next.(*boardModel)
	assert.Equal(t, 1, m.cursor, "cursor must not move past the last row")

	next, _ = m.Update(keyMsg("k"))
	m = next.(*boardModel)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.Update(keyMsg("k"))
	m = next.(*boardModel)
	assert.Equal(t, 0, m.cursor)
}

func TestBoardModel_SpaceTogglesTask(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	added, err := app.Tasks.Add(ctx, "", domain.Task{Cohort: "32", Title: "발표 준비", DueDate: "2026-03-10"})
	require.NoError(t, err)
	tasks, err := app.Tasks.List(ctx)
	require.NoError(t, err)

	m := loadedBoard(t, app, "32", tasks...)
	next, cmd := m.Update(keyMsg("space"))
	m = next.(*boardModel)
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(boardSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	next, _ = m.Update(saved)
	m = next.(*boardModel)

	got, err := app.Tasks.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Contains(t, m.View(), "[x]")
}

func TestBoardModel_AssignFlow(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	added, err := app.Tasks.Add(ctx, "", domain.Task{Cohort: "32", Title: "발표 준비", DueDate: "2026-03-10"})
	require.NoError(t, err)
	tasks, err := app.Tasks.List(ctx)
	require.NoError(t, err)

	m := loadedBoard(t, app, "32", tasks...)

	next, _ := m.Update(keyMsg("a"))
	m = next.(*boardModel)
	assert.True(t, m.assigning)

	m.assignBox.SetValue("김코치")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*boardModel)
	assert.False(t, m.assigning)
	require.NotNil(t, cmd)

	saved, ok := cmd().(boardSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	got, err := app.Tasks.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "김코치", got.Assignee)
}

func TestBoardModel_DegradedNotice(t *testing.T) {
	app, _ := newTestApp(t)
	m := newBoardModel(app, "32")
	next, _ := m.Update(boardLoadedMsg{degraded: true})
	m = next.(*boardModel)

	assert.Contains(t, m.View(), "오프라인")
}
