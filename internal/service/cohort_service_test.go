package service

import (
	"context"
	"testing"

	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/repository"
	"github.com/jaeyoonkim/gisu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCohortService_Select_UnknownCohort(t *testing.T) {
	f := newFixture(t)
	err := f.cohorts.Select(context.Background(), testUID, "99")
	assert.ErrorIs(t, err, ErrUnknownCohort)
}

func TestCohortService_Select_PersistsBothTiers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cohorts.Select(ctx, testUID, "33"))

	current, err := f.cohorts.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "33", current)
	assert.NotNil(t, f.remote.Docs[testUID+"/cohort"])
}

func TestCohortService_Select_SeedsChecklist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))

	cached := f.cached(t)
	assert.Len(t, cached, 9)
	for _, task := range cached {
		assert.Equal(t, "32", task.Cohort)
		assert.Equal(t, domain.OriginSeed, task.Origin)
		assert.False(t, task.Done)
	}
}

func TestCohortService_Select_SeedsOncePerCohort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))
	first := f.cached(t)

	// A deleted seed task must not come back on re-selection.
	require.NoError(t, f.tasks.Delete(ctx, testUID, first[0].ID, false))
	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))

	assert.Len(t, f.cached(t), len(first)-1)
}

func TestCohortService_Select_SeparateCohortsBothSeed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))
	require.NoError(t, f.cohorts.Select(ctx, testUID, "33"))

	byCohort := map[string]int{}
	for _, task := range f.cached(t) {
		byCohort[task.Cohort]++
	}
	assert.Equal(t, 9, byCohort["32"])
	assert.Equal(t, 9, byCohort["33"])
}

func TestCohortService_Materialize_CustomTemplatesEveryPass(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))

	// Promote a template after the first selection; the next pass for the
	// same cohort must still pick it up.
	tpl := testutil.NewTestTemplate("설문 발송", 10)
	require.NoError(t, f.templates.Upsert(ctx, &tpl))

	added, err := f.cohorts.Materialize(ctx, testUID, "32")
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	var got *domain.Task
	for _, task := range f.cached(t) {
		if task.TemplateID == tpl.ID {
			task := task
			got = &task
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, "2026-03-05", got.DueDate)
	assert.Equal(t, domain.OriginCustom, got.Origin)
}

func TestCohortService_Materialize_RespectsDismissals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tpl := testutil.NewTestTemplate("설문 발송", 10)
	require.NoError(t, f.templates.Upsert(ctx, &tpl))
	require.NoError(t, f.dismissals.Dismiss(ctx, "32", tpl.ID))

	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))
	for _, task := range f.cached(t) {
		assert.NotEqual(t, tpl.ID, task.TemplateID)
	}

	// The same template still materializes for a cohort that never
	// dismissed it.
	require.NoError(t, f.cohorts.Select(ctx, testUID, "33"))
	found := false
	for _, task := range f.cached(t) {
		if task.Cohort == "33" && task.TemplateID == tpl.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCohortService_Materialize_DeletedCustomTaskStaysGone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tpl := testutil.NewTestTemplate("설문 발송", 10)
	require.NoError(t, f.templates.Upsert(ctx, &tpl))

	require.NoError(t, f.cohorts.Select(ctx, testUID, "32"))
	var materialized *domain.Task
	for _, task := range f.cached(t) {
		if task.TemplateID == tpl.ID {
			task := task
			materialized = &task
		}
	}
	require.NotNil(t, materialized)

	require.NoError(t, f.tasks.Delete(ctx, testUID, materialized.ID, true))

	added, err := f.cohorts.Materialize(ctx, testUID, "32")
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestCohortService_Load_RemoteWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.settings.Set(ctx, repository.SettingCohort, "32"))
	require.NoError(t, f.remote.Set(ctx, testUID, "cohort", "34"))

	cohort, err := f.cohorts.Load(ctx, testUID)
	require.NoError(t, err)
	assert.Equal(t, "34", cohort)

	current, err := f.cohorts.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "34", current, "remote selection should overwrite the local setting")
}
