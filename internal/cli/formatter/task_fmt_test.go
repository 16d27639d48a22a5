package formatter

import (
	"strings"
	"testing"

	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatTaskList_Empty(t *testing.T) {
	out := FormatTaskList(nil)
	assert.Contains(t, out, "할 일이 없습니다")
}

func TestFormatTaskList_GroupsByCohort(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("32", "발표 준비"),
		testutil.NewTestTask("33", "설문 발송"),
	}
	out := FormatTaskList(tasks)

	assert.Contains(t, out, "32기(1차)")
	assert.Contains(t, out, "33기(2차)")
	assert.Contains(t, out, "발표 준비")
	assert.Contains(t, out, "설문 발송")
}

func TestFormatTaskList_ShowsDoneMarker(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("32", "끝난 일", testutil.WithDone()),
		testutil.NewTestTask("32", "남은 일"),
	}
	out := FormatTaskList(tasks)

	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "32:snack_order:2026-02-19", ShortID("32:snack_order:2026-02-19"))

	long := "custom:0f8fad5b-d9cb-469f-a165-70867728950e"
	short := ShortID(long)
	assert.True(t, strings.HasPrefix(long, short))
	assert.Len(t, short, 15)
}

func TestFormatTemplateList(t *testing.T) {
	templates := []domain.CustomTemplate{
		{ID: "tpl-1", Title: "주간 점검", Phase: domain.PhaseDuring, BaseCohort: "32", OffsetDays: 10},
	}
	out := FormatTemplateList(templates)

	assert.Contains(t, out, "주간 점검")
	assert.Contains(t, out, "32기 시작 +10일")
}
