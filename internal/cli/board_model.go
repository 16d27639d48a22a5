package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/jaeyoonkim/gisu/internal/domain"
)

// boardLoadedMsg carries the reconciled task list into the model.
type boardLoadedMsg struct {
	tasks    []domain.Task
	degraded bool
	err      error
}

// boardSavedMsg reports the outcome of a toggle or assign.
type boardSavedMsg struct {
	tasks []domain.Task
	err   error
}

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Assign key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var boardKeys = boardKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "위로")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "아래로")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "완료 토글")),
	Assign: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "담당자")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "새로고침")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "종료")),
}

// boardModel is the interactive task board: a cursor over the active
// cohort's tasks with toggle and assign actions.
type boardModel struct {
	app    *App
	cohort string

	tasks    []domain.Task
	cursor   int
	loading  bool
	degraded bool
	err      error

	spin      spinner.Model
	assignBox textinput.Model
	assigning bool
}

func newBoardModel(app *App, cohort string) *boardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	box := textinput.New()
	box.Placeholder = "담당자 이름"
	box.CharLimit = 40

	return &boardModel{
		app:       app,
		cohort:    cohort,
		loading:   true,
		spin:      sp,
		assignBox: box,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

// load pulls the freshest list through the bridge when signed in, and
// straight from the cache otherwise.
func (m *boardModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		uid := app.currentUID(ctx)
		if uid == "" {
			tasks, err := app.Tasks.List(ctx)
			return boardLoadedMsg{tasks: tasks, degraded: true, err: err}
		}
		result, err := app.Bridge.LoadTasks(ctx, uid)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		return boardLoadedMsg{tasks: result.Tasks, degraded: result.Degraded}
	}
}

func (m *boardModel) toggle(id string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Tasks.Toggle(ctx, app.currentUID(ctx), id); err != nil {
			return boardSavedMsg{err: err}
		}
		tasks, err := app.Tasks.List(ctx)
		return boardSavedMsg{tasks: tasks, err: err}
	}
}

func (m *boardModel) assign(id, who string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		if err := app.Tasks.SetAssignee(ctx, app.currentUID(ctx), id, who); err != nil {
			return boardSavedMsg{err: err}
		}
		tasks, err := app.Tasks.List(ctx)
		return boardSavedMsg{tasks: tasks, err: err}
	}
}

// visible returns the board's rows: the active cohort's tasks only.
func (m *boardModel) visible() []domain.Task {
	var rows []domain.Task
	for _, t := range m.tasks {
		if m.cohort == "" || t.Cohort == m.cohort {
			rows = append(rows, t)
		}
	}
	return rows
}

func (m *boardModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.tasks
		m.degraded = msg.degraded
		m.clampCursor()
		return m, nil

	case boardSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.tasks
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.assigning {
			return m.updateAssigning(msg)
		}

		visible := m.visible()
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, boardKeys.Down):
			if m.cursor < len(visible)-1 {
				m.cursor++
			}
		case key.Matches(msg, boardKeys.Toggle):
			if m.cursor < len(visible) {
				return m, m.toggle(visible[m.cursor].ID)
			}
		case key.Matches(msg, boardKeys.Assign):
			if m.cursor < len(visible) {
				m.assigning = true
				m.assignBox.SetValue(visible[m.cursor].Assignee)
				m.assignBox.Focus()
				return m, textinput.Blink
			}
		case key.Matches(msg, boardKeys.Reload):
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.load())
		}
	}
	return m, nil
}

func (m *boardModel) updateAssigning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.assigning = false
		m.assignBox.Blur()
		visible := m.visible()
		if m.cursor < len(visible) {
			return m, m.assign(visible[m.cursor].ID, m.assignBox.Value())
		}
		return m, nil
	case "esc":
		m.assigning = false
		m.assignBox.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.assignBox, cmd = m.assignBox.Update(msg)
	return m, cmd
}

func (m *boardModel) View() string {
	var b strings.Builder

	title := catalog.LabelFor(m.cohort)
	if m.cohort == "" {
		title = "전체"
	}
	b.WriteString(formatter.Header(title+" 할 일") + "\n")

	if m.degraded && !m.loading {
		b.WriteString(formatter.Warn("오프라인: 로컬 데이터만 표시합니다.") + "\n")
	}
	if m.err != nil {
		b.WriteString(formatter.Fail(m.err.Error()) + "\n")
	}

	if m.loading {
		b.WriteString(fmt.Sprintf("\n %s %s\n", m.spin.View(), formatter.Dim("불러오는 중...")))
		return b.String()
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString("\n" + formatter.Dim("할 일이 없습니다.") + "\n")
	}
	for i, t := range visible {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("› ")
		}
		line := fmt.Sprintf("%s%s %s  %s", cursor, formatter.Checkbox(t.Done), formatter.Dim(t.DueDate), t.Title)
		if t.Assignee != "" {
			line += "  " + formatter.StyleBlue.Render("@"+t.Assignee)
		}
		b.WriteString(line + "\n")
	}

	if m.assigning {
		b.WriteString("\n" + formatter.Bold("담당자 지정") + "\n" + m.assignBox.View() + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ 이동 · space 완료 · a 담당자 · r 새로고침 · q 종료") + "\n")
	return b.String()
}
