package engine

import (
	"testing"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	table := core.SynonymTable{
		"exam": {"test", "quiz"},
	}

	t.Run("canonical key expands to full group", func(t *testing.T) {
		got := Expand("exam", table)
		assert.Equal(t, map[string]bool{"exam": true, "test": true, "quiz": true}, got)
	})

	t.Run("group member expands to same set", func(t *testing.T) {
		got := Expand("test", table)
		assert.Equal(t, map[string]bool{"exam": true, "test": true, "quiz": true}, got)

		got = Expand("quiz", table)
		assert.Equal(t, map[string]bool{"exam": true, "test": true, "quiz": true}, got)
	})

	t.Run("unrelated token expands to itself", func(t *testing.T) {
		got := Expand("pizza", table)
		assert.Equal(t, map[string]bool{"pizza": true}, got)
	})

	t.Run("always contains the token", func(t *testing.T) {
		for _, token := range []string{"exam", "test", "quiz", "other", ""} {
			assert.True(t, Expand(token, table)[token])
		}
	})
}

func TestExpand_SingleHop(t *testing.T) {
	// "test" belongs to the exam group; the quiz group chains off "quiz"
	// but must not be pulled in transitively.
	table := core.SynonymTable{
		"exam": {"test", "quiz"},
		"quiz": {"puzzle"},
	}

	got := Expand("test", table)
	assert.True(t, got["exam"])
	assert.True(t, got["quiz"])
	assert.False(t, got["puzzle"], "expansion must not follow chained groups")
}

func TestExpandQuery(t *testing.T) {
	table := core.SynonymTable{
		"exam":  {"test", "quiz"},
		"notes": {"note", "material"},
	}

	got := ExpandQuery("When is the EXAM?", table)

	for _, term := range []string{"when", "is", "the", "exam", "test", "quiz"} {
		assert.True(t, got[term], "missing term %q", term)
	}
	assert.False(t, got["notes"])
}

func TestExpandQuery_Empty(t *testing.T) {
	got := ExpandQuery("", core.SynonymTable{})
	assert.Empty(t, got)
}
