package cli

import (
	"context"
	"testing"

	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTaskID(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Cohorts.Select(ctx, "", "32"))

	// Exact seed ID.
	id, err := resolveTaskID(ctx, app, "32:certificate_prep:2026-04-30")
	require.NoError(t, err)
	assert.Equal(t, "32:certificate_prep:2026-04-30", id)

	// Unique prefix.
	id, err = resolveTaskID(ctx, app, "32:certificate")
	require.NoError(t, err)
	assert.Equal(t, "32:certificate_prep:2026-04-30", id)

	// Ambiguous prefix: every seed task starts with the cohort key.
	_, err = resolveTaskID(ctx, app, "32:")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveTaskID(ctx, app, "zzz")
	assert.ErrorContains(t, err, "not found")
}

func TestResolveTemplateID_ByTitle(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	added, err := app.Tasks.Add(ctx, "", domain.Task{Cohort: "32", Title: "설문 발송", DueDate: "2026-03-05"})
	require.NoError(t, err)
	tpl, err := app.Tasks.PromoteToTemplate(ctx, "", added.ID)
	require.NoError(t, err)

	id, err := resolveTemplateID(ctx, app, "설문 발송")
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, id)

	_, err = resolveTemplateID(ctx, app, "없는 템플릿")
	assert.ErrorContains(t, err, "not found")
}
