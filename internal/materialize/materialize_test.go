package materialize

import (
	"testing"

	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseOf_Boundaries(t *testing.T) {
	start, end := "2026-02-23", "2026-05-01"

	tests := []struct {
		due  string
		want domain.Phase
	}{
		{"2026-02-22", domain.PhasePre},
		{"2026-02-23", domain.PhaseDuring}, // start is inclusive
		{"2026-03-15", domain.PhaseDuring},
		{"2026-05-01", domain.PhaseDuring}, // end is inclusive
		{"2026-05-02", domain.PhasePost},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseOf(tt.due, start, end), "due %s", tt.due)
	}
}

func TestPhaseFor_UnknownCohortDefaultsDuring(t *testing.T) {
	assert.Equal(t, domain.PhaseDuring, PhaseFor("99", "2026-01-01"))
}

func TestEnsureSeedTasks_MaterializesFullChecklist(t *testing.T) {
	out := EnsureSeedTasks(nil, "32", 1000)
	require.Len(t, out, len(catalog.SeedTemplates))

	byID := make(map[string]domain.Task)
	for _, task := range out {
		byID[task.ID] = task
		assert.Equal(t, "32", task.Cohort)
		assert.False(t, task.Done)
		assert.Equal(t, domain.OriginSeed, task.Origin)
		assert.Equal(t, int64(1000), task.CreatedAt)
	}

	// 수료증 준비: anchor ai_end 2026-05-01, offset -1.
	cert, ok := byID["32:certificate_prep:2026-04-30"]
	require.True(t, ok, "expected deterministic certificate task id")
	assert.Equal(t, "수료증 준비", cert.Title)
	assert.Equal(t, "2026-04-30", cert.DueDate)
	assert.Equal(t, domain.PhaseDuring, cert.Phase)

	// 인스타그램 홍보: 42 days before python_start, well before the window.
	promo, ok := byID["32:promo_instagram:2026-01-12"]
	require.True(t, ok)
	assert.Equal(t, domain.PhasePre, promo.Phase)
}

func TestEnsureSeedTasks_Idempotent(t *testing.T) {
	once := EnsureSeedTasks(nil, "33", 1)
	twice := EnsureSeedTasks(once, "33", 2)
	assert.Equal(t, once, twice, "second pass must add nothing")
}

func TestEnsureSeedTasks_UnknownCohortNoOp(t *testing.T) {
	existing := []domain.Task{{ID: "custom:a", Cohort: "32", Title: "회의"}}
	out := EnsureSeedTasks(existing, "99", 1)
	assert.Equal(t, existing, out)
}

func TestEnsureSeedTasks_OtherCohortTasksUntouched(t *testing.T) {
	seeded32 := EnsureSeedTasks(nil, "32", 1)
	both := EnsureSeedTasks(seeded32, "33", 2)

	assert.Len(t, both, 2*len(catalog.SeedTemplates))
	// 32's tasks are byte-for-byte unchanged at the front.
	assert.Equal(t, seeded32, both[:len(seeded32)])
}

func TestCustomDrafts_OffsetFromCohortStart(t *testing.T) {
	tpl := domain.CustomTemplate{
		ID: "tpl-1", Title: "설문 발송", Phase: domain.PhaseDuring,
		BaseCohort: "32", OffsetDays: 3,
	}

	drafts := CustomDrafts(nil, []domain.CustomTemplate{tpl}, "33", nil)
	require.Len(t, drafts, 1)
	// 33 starts 2026-05-11; offset 3 lands on 05-14.
	assert.Equal(t, "2026-05-14", drafts[0].DueDate)
	assert.Equal(t, "tpl-1", drafts[0].TemplateID)
	assert.Equal(t, domain.OriginCustom, drafts[0].Origin)
	assert.Empty(t, drafts[0].ID, "drafts carry no ID")
}

func TestCustomDrafts_SkipsDismissedAndPresent(t *testing.T) {
	tpls := []domain.CustomTemplate{
		{ID: "tpl-a", Title: "a", Phase: domain.PhasePre, OffsetDays: -1},
		{ID: "tpl-b", Title: "b", Phase: domain.PhasePre, OffsetDays: -2},
		{ID: "tpl-c", Title: "c", Phase: domain.PhasePre, OffsetDays: -3},
	}
	existing := []domain.Task{{ID: "custom:x", Cohort: "32", TemplateID: "tpl-a"}}
	dismissed := func(cohort, templateID string) bool {
		return cohort == "32" && templateID == "tpl-b"
	}

	drafts := CustomDrafts(existing, tpls, "32", dismissed)
	require.Len(t, drafts, 1)
	assert.Equal(t, "tpl-c", drafts[0].TemplateID)

	// The dismissal is scoped to cohort 32: cohort 33 still materializes tpl-b.
	drafts = CustomDrafts(nil, tpls[1:2], "33", dismissed)
	require.Len(t, drafts, 1)
	assert.Equal(t, "tpl-b", drafts[0].TemplateID)
}

func TestCustomDrafts_UnknownCohort(t *testing.T) {
	tpls := []domain.CustomTemplate{{ID: "tpl-a", Title: "a", OffsetDays: 0}}
	assert.Nil(t, CustomDrafts(nil, tpls, "99", nil))
}

func TestAllCohortDrafts(t *testing.T) {
	spec := ApplySpec{TemplateID: "tpl-all", Title: "오리엔테이션 자료", OffsetDays: -7}

	drafts := AllCohortDrafts(nil, spec)
	require.Len(t, drafts, len(catalog.Cohorts))

	seen := make(map[string]bool)
	for _, d := range drafts {
		seen[d.Cohort] = true
		assert.Equal(t, "tpl-all", d.TemplateID)

		sched, _ := catalog.ScheduleFor(d.Cohort)
		want, _ := domain.AddDays(sched.Start(), -7)
		assert.Equal(t, want, d.DueDate)
		assert.Equal(t, domain.PhasePre, d.Phase)
	}
	assert.Len(t, seen, len(catalog.Cohorts))
}

func TestAllCohortDrafts_SkipsExistingPairs(t *testing.T) {
	spec := ApplySpec{TemplateID: "tpl-all", Title: "t", OffsetDays: 0}
	existing := []domain.Task{{ID: "custom:x", Cohort: "34", TemplateID: "tpl-all"}}

	drafts := AllCohortDrafts(existing, spec)
	assert.Len(t, drafts, len(catalog.Cohorts)-1)
	for _, d := range drafts {
		assert.NotEqual(t, "34", d.Cohort)
	}
}
