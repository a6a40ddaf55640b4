package engine

import (
	"testing"
	"time"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankTestDocs(now time.Time) []*core.Document {
	return []*core.Document{
		{
			Id:          1,
			DisplayName: "DBMS Unit 1",
			Filename:    "20240101_dbms_unit1.pdf",
			Keywords:    []string{"dbms", "database", "sql"},
			UploadedAt:  now.Add(-48 * time.Hour),
		},
		{
			Id:          2,
			DisplayName: "Operating Systems",
			Filename:    "20240110_os.pdf",
			Keywords:    []string{"os", "operating systems"},
			UploadedAt:  now.Add(-24 * time.Hour),
		},
	}
}

func TestRank_ListAllRequest(t *testing.T) {
	now := time.Now().UTC()
	docs := rankTestDocs(now)

	for _, query := range []string{"notes", "note", "show notes", "list notes", "NOTES!"} {
		ranked := Rank(query, docs, core.SynonymTable{})
		require.Len(t, ranked, 2, "query %q", query)
		// Newest first, no scoring involved.
		assert.Equal(t, core.ID(2), ranked[0].Id)
		assert.Equal(t, core.ID(1), ranked[1].Id)
	}
}

func TestIsListAllRequest(t *testing.T) {
	assert.True(t, IsListAllRequest("notes"))
	assert.True(t, IsListAllRequest("Show Notes"))
	assert.False(t, IsListAllRequest("dbms notes"))
	assert.False(t, IsListAllRequest(""))
}

func TestRank_ExactDisplayNameWins(t *testing.T) {
	now := time.Now().UTC()
	docs := rankTestDocs(now)

	ranked := Rank("dbms unit 1", docs, core.SynonymTable{})
	require.NotEmpty(t, ranked)
	assert.Equal(t, core.ID(1), ranked[0].Id)
}

func TestRank_ThresholdFiltersUnrelated(t *testing.T) {
	now := time.Now().UTC()
	docs := rankTestDocs(now)

	ranked := Rank("medieval history of pottery", docs, core.SynonymTable{})
	assert.Empty(t, ranked)
}

func TestRank_SynonymExpansionReachesKeywords(t *testing.T) {
	now := time.Now().UTC()
	docs := rankTestDocs(now)
	table := core.SynonymTable{
		"dbms": {"database management system", "database", "db"},
	}

	ranked := Rank("database management system material", docs, table)
	require.NotEmpty(t, ranked)
	assert.Equal(t, core.ID(1), ranked[0].Id)
}

func TestRank_TieBrokenByUploadTime(t *testing.T) {
	now := time.Now().UTC()
	docs := []*core.Document{
		{
			Id:          1,
			DisplayName: "Maths",
			Filename:    "a_maths.pdf",
			Keywords:    []string{"maths"},
			UploadedAt:  now.Add(-48 * time.Hour),
		},
		{
			Id:          2,
			DisplayName: "Maths",
			Filename:    "b_maths.pdf",
			Keywords:    []string{"maths"},
			UploadedAt:  now.Add(-1 * time.Hour),
		},
	}

	ranked := Rank("maths study guide", docs, core.SynonymTable{})
	require.Len(t, ranked, 2)
	assert.Equal(t, core.ID(2), ranked[0].Id, "newest upload wins ties")
}

func TestSortByUploadTime(t *testing.T) {
	now := time.Now().UTC()
	docs := rankTestDocs(now)

	sorted := SortByUploadTime(docs)
	require.Len(t, sorted, 2)
	assert.Equal(t, core.ID(2), sorted[0].Id)
	// Input order untouched.
	assert.Equal(t, core.ID(1), docs[0].Id)
}

func TestFilenameStem(t *testing.T) {
	assert.Equal(t, "20240101_dbms", filenameStem("20240101_dbms.pdf"))
	assert.Equal(t, "archive", filenameStem("archive.tar.gz"))
	assert.Equal(t, "nodot", filenameStem("nodot"))
}
