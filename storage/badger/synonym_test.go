package badger

import (
	"context"
	"testing"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonymSetAndGetTable(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Synonyms.SetSynonymGroup(ctx, "exam", []string{"test", "quiz", "exm"}))
	require.NoError(t, repos.Synonyms.SetSynonymGroup(ctx, "notes", []string{"note", "material"}))

	table, err := repos.Synonyms.GetSynonymTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.SynonymTable{
		"exam":  {"test", "quiz", "exm"},
		"notes": {"note", "material"},
	}, table)
}

func TestSynonymSetReplacesGroup(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Synonyms.SetSynonymGroup(ctx, "exam", []string{"test"}))
	require.NoError(t, repos.Synonyms.SetSynonymGroup(ctx, "exam", []string{"test", "quiz"}))

	table, err := repos.Synonyms.GetSynonymTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"test", "quiz"}, table["exam"])
}

func TestSynonymDelete(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Synonyms.SetSynonymGroup(ctx, "exam", []string{"test"}))
	require.NoError(t, repos.Synonyms.DeleteSynonymGroup(ctx, "exam"))

	table, err := repos.Synonyms.GetSynonymTable(ctx)
	require.NoError(t, err)
	assert.Empty(t, table)

	err = repos.Synonyms.DeleteSynonymGroup(ctx, "exam")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSynonymEmptyTable(t *testing.T) {
	repos := newTestRepos(t)

	table, err := repos.Synonyms.GetSynonymTable(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, table)
	assert.Empty(t, table)
}
