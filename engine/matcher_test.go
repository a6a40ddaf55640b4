package engine

import (
	"testing"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examCategorySet() core.CategorySet {
	return core.CategorySet{
		Categories: map[string]core.Category{
			CategoryExamDates: {
				Name: CategoryExamDates,
				Records: []core.Record{
					{Key: "Midterm", Value: "Oct 5", Keywords: []string{"midterm", "exam1"}},
					{Key: "Finals", Value: "Dec 12", Keywords: []string{"finals", "end sem"}},
				},
			},
			CategoryFaculty: {
				Name: CategoryFaculty,
				Records: []core.Record{
					{Key: "Dr. Rao", Value: "DBMS, Room 210", Keywords: []string{"dbms", "rao"}},
				},
			},
		},
	}
}

func TestMatchGlobal_BestRecordAboveThreshold(t *testing.T) {
	set := examCategorySet()

	match := MatchGlobal("when is the midterm", core.SynonymTable{}, set)
	require.NotNil(t, match)
	assert.Equal(t, "Midterm", match.Record.Key)
	assert.Equal(t, CategoryExamDates, match.Category)
	assert.Greater(t, match.Score, float64(globalThreshold))
}

func TestMatchGlobal_NoMatchBelowThreshold(t *testing.T) {
	set := examCategorySet()

	match := MatchGlobal("completely unrelated question", core.SynonymTable{}, set)
	assert.Nil(t, match)
}

func TestMatchGlobal_QuestionCueBonusOncePerRecord(t *testing.T) {
	set := core.CategorySet{
		Categories: map[string]core.Category{
			CategoryExamDates: {
				Name: CategoryExamDates,
				Records: []core.Record{
					{Key: "Midterm", Value: "Oct 5", Keywords: []string{"midterm", "mid"}},
				},
			},
		},
	}

	plain := MatchGlobal("the midterm", core.SynonymTable{}, set)
	cued := MatchGlobal("when is the midterm", core.SynonymTable{}, set)
	require.NotNil(t, plain)
	require.NotNil(t, cued)

	// "when" adds exactly one +5 even though the record has two keywords.
	assert.Equal(t, plain.Score+questionCueBonus, cued.Score)
}

func TestMatchGlobal_KeywordCasePreservedInStorage(t *testing.T) {
	makeSet := func(keyword string) core.CategorySet {
		return core.CategorySet{
			Categories: map[string]core.Category{
				CategoryExamDates: {
					Name: CategoryExamDates,
					Records: []core.Record{
						{Key: "Finals", Value: "Dec 12", Keywords: []string{keyword}},
					},
				},
			},
		}
	}

	// Keywords stored before canonicalization still carry their original
	// casing; scoring must treat them as if lowercased.
	mixed := MatchGlobal("semester finals", core.SynonymTable{}, makeSet("Semester Finals"))
	lower := MatchGlobal("semester finals", core.SynonymTable{}, makeSet("semester finals"))
	require.NotNil(t, mixed)
	require.NotNil(t, lower)
	assert.Equal(t, lower.Score, mixed.Score)
}

func TestMatchCategory_KeywordCasePreservedInStorage(t *testing.T) {
	makeCategory := func(keyword string) core.Category {
		return core.Category{
			Name: CategoryExamDates,
			Records: []core.Record{
				{Key: "Finals", Value: "Dec 12", Keywords: []string{keyword}},
			},
		}
	}

	mixed := MatchCategory("semester finals", makeCategory("Semester Finals"))
	lower := MatchCategory("semester finals", makeCategory("semester finals"))
	require.NotNil(t, mixed)
	require.NotNil(t, lower)
	assert.Equal(t, "Finals", mixed.Record.Key)
	assert.Equal(t, lower.Score, mixed.Score)
}

func TestMatchGlobal_SynonymExpansionFindsRecord(t *testing.T) {
	table := core.SynonymTable{"exam": {"midterm", "test"}}
	set := examCategorySet()

	match := MatchGlobal("exam", table, set)
	require.NotNil(t, match)
	assert.Equal(t, "Midterm", match.Record.Key)
}

func TestMatchGlobal_CustomCategoryShortCircuits(t *testing.T) {
	set := core.CategorySet{
		Custom: map[string]string{
			"Library Hours": "Mon-Fri 8am-10pm",
		},
	}

	match := MatchGlobal("library hours please", core.SynonymTable{}, set)
	require.NotNil(t, match)
	assert.Equal(t, "custom", match.Category)
	assert.Equal(t, "Library Hours", match.Record.Key)
	assert.Equal(t, "Mon-Fri 8am-10pm", match.Record.Value)
}

func TestMatchGlobal_LegacyRecordWithoutKeywords(t *testing.T) {
	set := core.CategorySet{
		Categories: map[string]core.Category{
			CategorySchedule: {
				Name: CategorySchedule,
				Records: []core.Record{
					{Key: "Monday", Value: "9am DBMS, 11am Maths"},
				},
			},
		},
	}

	// Key matching alone can cross the threshold; missing keywords must
	// not fail the scan.
	match := MatchGlobal("what about monday", core.SynonymTable{}, set)
	require.NotNil(t, match)
	assert.Equal(t, "Monday", match.Record.Key)
}

func TestMatchCategory_BestRecord(t *testing.T) {
	category := examCategorySet().Categories[CategoryExamDates]

	match := MatchCategory("midterm", category)
	require.NotNil(t, match)
	assert.Equal(t, "Midterm", match.Record.Key)
	assert.Greater(t, match.Score, float64(scopedThreshold))
}

func TestMatchCategory_ExactKeywordOutscoresPartial(t *testing.T) {
	category := core.Category{
		Name: CategoryExamDates,
		Records: []core.Record{
			{Key: "Midterm", Value: "Oct 5", Keywords: []string{"midterm"}},
			{Key: "Midterm Retake", Value: "Oct 20", Keywords: []string{"midterm retake"}},
		},
	}

	match := MatchCategory("midterm", category)
	require.NotNil(t, match)
	assert.Equal(t, "Midterm", match.Record.Key)
}

func TestMatchCategory_NoMatchReturnsNil(t *testing.T) {
	category := examCategorySet().Categories[CategoryExamDates]

	match := MatchCategory("zzz qqq", category)
	assert.Nil(t, match)
}

func TestMatchCategory_EmptyCategory(t *testing.T) {
	match := MatchCategory("anything", core.Category{Name: CategoryEvents})
	assert.Nil(t, match)
}

func TestMatchCategory_LegacyValueOnlyRecord(t *testing.T) {
	category := core.Category{
		Name: CategorySchedule,
		Records: []core.Record{
			{Key: "Monday", Value: "9am DBMS"},
		},
	}

	match := MatchCategory("monday", category)
	require.NotNil(t, match)
	assert.Equal(t, "Monday", match.Record.Key)
}
