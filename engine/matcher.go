package engine

import (
	"slices"
	"strings"

	"github.com/ranji790/SmartBuddy/core"
)

// Match is a scored record lookup result.
type Match struct {
	Category string
	Record   core.Record
	Score    float64
}

// fieldRule pairs a weight with a match predicate over (term, target).
// Rules are evaluated in order and the first hit wins, so a substring
// match is never double-counted as a fuzzy match.
type fieldRule struct {
	weight float64
	match  func(term, target string) bool
}

func fuzzyAbove(threshold float64) func(term, target string) bool {
	return func(term, target string) bool {
		return Ratio(term, target) > threshold
	}
}

func exact(term, target string) bool {
	return term == target
}

// Global-mode weight tables (one scan across every category, before
// intent classification).
var (
	globalKeywordRules = []fieldRule{
		{40, containsEither},
		{25, fuzzyAbove(70)},
	}
	globalKeyRules = []fieldRule{
		{35, containsEither},
		{20, fuzzyAbove(70)},
	}
)

// Category-scoped weight tables (single query string, not expanded).
var (
	scopedKeywordRules = []fieldRule{
		{50, exact},
		{30, containsEither},
		{20, fuzzyAbove(60)},
	}
)

const (
	questionCueBonus  = 5
	globalThreshold   = 15
	scopedThreshold   = 5
	scopedKeyBonus    = 15
	scopedValueBonus  = 10
	scopedRatioFactor = 0.1
)

// questionCues are interrogative words that add a small per-record bonus
// in global mode.
var questionCues = []string{"when", "what", "where", "how", "start", "begin"}

func applyRules(rules []fieldRule, term, target string) float64 {
	for _, r := range rules {
		if r.match(term, target) {
			return r.weight
		}
	}
	return 0
}

// MatchGlobal scans every category at once with synonym-expanded query
// terms and returns the best-scoring record if its score exceeds the
// global threshold, else nil. Stored keywords are normalized before
// comparison, so keywords with stray casing still score. A custom
// category whose name matches a term short-circuits scoring entirely and
// is returned immediately with the category name "custom". Categories
// are visited in sorted-name order so results are reproducible.
func MatchGlobal(query string, table core.SynonymTable, set core.CategorySet) *Match {
	normalized := Normalize(query)
	terms := ExpandQuery(query, table)

	hasQuestionCue := false
	for _, cue := range questionCues {
		if strings.Contains(normalized, cue) {
			hasQuestionCue = true
			break
		}
	}

	var best *Match
	names := make([]string, 0, len(set.Categories))
	for name := range set.Categories {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		category := set.Categories[name]
		for _, record := range category.Records {
			score := 0.0
			key := strings.ToLower(record.Key)

			for _, keyword := range record.Keywords {
				keyword = Normalize(keyword)
				for term := range terms {
					score += applyRules(globalKeywordRules, term, keyword)
				}
			}
			for term := range terms {
				score += applyRules(globalKeyRules, term, key)
			}
			if hasQuestionCue {
				score += questionCueBonus
			}

			if best == nil || score > best.Score {
				best = &Match{Category: name, Record: record, Score: score}
			}
		}
	}

	// Custom categories match by name only and bypass scoring.
	customNames := make([]string, 0, len(set.Custom))
	for name := range set.Custom {
		customNames = append(customNames, name)
	}
	slices.Sort(customNames)
	for _, name := range customNames {
		lower := strings.ToLower(name)
		for term := range terms {
			if containsEither(term, lower) {
				return &Match{
					Category: "custom",
					Record:   core.Record{Key: name, Value: set.Custom[name]},
					Score:    0,
				}
			}
		}
	}

	if best == nil || best.Score <= globalThreshold {
		return nil
	}
	return best
}

// MatchCategory scores every record in one category against the single
// normalized query string (no synonym expansion). The best record is
// returned when its score exceeds the scoped threshold; otherwise nil,
// and the caller falls back to dumping the whole category.
func MatchCategory(query string, category core.Category) *Match {
	normalized := Normalize(query)

	var best *Match
	for _, record := range category.Records {
		score := 0.0
		key := strings.ToLower(record.Key)
		value := strings.ToLower(record.Value)

		for _, keyword := range record.Keywords {
			score += applyRules(scopedKeywordRules, normalized, Normalize(keyword))
		}
		if normalized != "" && strings.Contains(key, normalized) {
			score += scopedKeyBonus
		}
		if normalized != "" && strings.Contains(value, normalized) {
			score += scopedValueBonus
		}
		score += Ratio(normalized, record.Key) * scopedRatioFactor
		score += Ratio(normalized, record.Value) * scopedRatioFactor

		if best == nil || score > best.Score {
			best = &Match{Category: category.Name, Record: record, Score: score}
		}
	}

	if best == nil || best.Score <= scopedThreshold {
		return nil
	}
	return best
}
