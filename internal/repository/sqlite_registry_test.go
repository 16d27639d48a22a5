package repository

import (
	"context"
	"testing"

	"github.com/jaeyoonkim/gisu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDismissals(t *testing.T) {
	repo := NewSQLiteDismissalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	dismissed, err := repo.IsDismissed(ctx, "32", "tpl-1")
	require.NoError(t, err)
	assert.False(t, dismissed)

	require.NoError(t, repo.Dismiss(ctx, "32", "tpl-1"))
	require.NoError(t, repo.Dismiss(ctx, "32", "tpl-1"), "repeat dismissal is a no-op")

	dismissed, err = repo.IsDismissed(ctx, "32", "tpl-1")
	require.NoError(t, err)
	assert.True(t, dismissed)

	// Scoped per cohort.
	dismissed, err = repo.IsDismissed(ctx, "33", "tpl-1")
	require.NoError(t, err)
	assert.False(t, dismissed)
}

func TestDismissals_DeleteByTemplate(t *testing.T) {
	repo := NewSQLiteDismissalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Dismiss(ctx, "32", "tpl-1"))
	require.NoError(t, repo.Dismiss(ctx, "33", "tpl-1"))
	require.NoError(t, repo.Dismiss(ctx, "32", "tpl-2"))

	require.NoError(t, repo.DeleteByTemplate(ctx, "tpl-1"))

	for _, cohort := range []string{"32", "33"} {
		d, err := repo.IsDismissed(ctx, cohort, "tpl-1")
		require.NoError(t, err)
		assert.False(t, d)
	}
	d, err := repo.IsDismissed(ctx, "32", "tpl-2")
	require.NoError(t, err)
	assert.True(t, d, "other templates untouched")
}

func TestSeedMarks(t *testing.T) {
	repo := NewSQLiteSeedMarkRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seeded, err := repo.IsSeeded(ctx, "32")
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.MarkSeeded(ctx, "32"))
	require.NoError(t, repo.MarkSeeded(ctx, "32"), "repeat mark is a no-op")

	seeded, err = repo.IsSeeded(ctx, "32")
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.IsSeeded(ctx, "33")
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestCustomTemplates_CRUD(t *testing.T) {
	repo := NewSQLiteCustomTemplateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	tpl := testutil.NewTestTemplate("설문 발송", 3)
	require.NoError(t, repo.Upsert(ctx, &tpl))

	got, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "설문 발송", got.Title)
	assert.Equal(t, "32", got.BaseCohort)
	assert.Equal(t, 3, got.OffsetDays)

	// Upsert with the same ID replaces fields.
	tpl.Title = "설문 재발송"
	tpl.OffsetDays = 5
	require.NoError(t, repo.Upsert(ctx, &tpl))

	got, err = repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "설문 재발송", got.Title)
	assert.Equal(t, 5, got.OffsetDays)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, tpl.ID))
	_, err = repo.GetByID(ctx, tpl.ID)
	assert.Error(t, err)
}

func TestHolidayCache(t *testing.T) {
	repo := NewSQLiteHolidayCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	got, err := repo.Get(ctx, 2026)
	require.NoError(t, err)
	assert.Nil(t, got)

	payload := []byte(`[{"date":"2026-01-01","name":"신정","substitute":false}]`)
	require.NoError(t, repo.Put(ctx, 2026, payload))

	got, err = repo.Get(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Overwrite for the same year.
	require.NoError(t, repo.Put(ctx, 2026, []byte(`[]`)))
	got, err = repo.Get(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}
