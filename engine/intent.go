package engine

import (
	"slices"
	"strings"

	"github.com/ranji790/SmartBuddy/core"
)

// Classification is the result of intent detection. Category names the
// target category for IntentCategory and the standard intents.
type Classification struct {
	Intent   core.Intent
	Category string
}

// Standard category names as stored by the administrator.
const (
	CategoryExamDates = "exam_dates"
	CategoryFaculty   = "faculty"
	CategorySchedule  = "schedule"
	CategoryEvents    = "events"
)

// standardCategoryOrder fixes the priority of the dynamic fallback scan.
// When a query's keywords appear in more than one category, the earliest
// of these wins.
var standardCategoryOrder = []string{
	CategoryExamDates,
	CategoryFaculty,
	CategorySchedule,
	CategoryEvents,
}

// intentRule pairs an intent with its cue words. Rules are evaluated in
// order; the first rule with any cue matching any expanded term wins.
type intentRule struct {
	intent   core.Intent
	category string
	cues     []string
}

// Priority order is fixed: documents are checked before exam info, so a
// query like "exam notes" resolves to a documents request.
var intentRules = []intentRule{
	{core.IntentDocuments, "", []string{"note", "notes", "material", "pdf"}},
	{core.IntentExam, CategoryExamDates, []string{"exam", "test", "examination", "exm", "quiz"}},
	{core.IntentFaculty, CategoryFaculty, []string{"faculty", "teacher", "professor", "staff"}},
	{core.IntentSchedule, CategorySchedule, []string{"schedule", "timetable", "class", "time"}},
	{core.IntentEvents, CategoryEvents, []string{"event", "events", "activity", "activities"}},
	{core.IntentMentalHealth, "", []string{"mental", "health", "stress", "anxiety"}},
	{core.IntentGreeting, "", []string{"help", "hi", "hello", "hey"}},
}

// dynamicFallbackRatio is the similarity threshold for the category
// keyword fallback when no fixed cue matched.
const dynamicFallbackRatio = 80

// Classify maps a query to a coarse intent. The expanded term set (plus
// the whole normalized query) is tested against each rule's cues in fixed
// priority order. If no rule matches, every standard category's record
// keywords are scanned for a substring or fuzzy hit and the first hit
// yields IntentCategory for that category. Otherwise IntentUnknown.
func Classify(text string, table core.SynonymTable, set core.CategorySet) Classification {
	terms := ExpandQuery(text, table)
	normalized := Normalize(text)
	terms[normalized] = true

	for _, rule := range intentRules {
		for term := range terms {
			for _, cue := range rule.cues {
				if containsEither(term, cue) {
					return Classification{Intent: rule.intent, Category: rule.category}
				}
			}
		}
	}

	// Dynamic fallback against stored category keywords. Standard
	// categories are consulted in their fixed priority order, then any
	// administrator-added categories in name order.
	for _, name := range standardCategoryOrder {
		category, ok := set.Categories[name]
		if !ok {
			continue
		}
		if categoryKeywordsMatch(normalized, category) {
			return Classification{Intent: core.IntentCategory, Category: name}
		}
	}
	names := make([]string, 0, len(set.Categories))
	for name := range set.Categories {
		if slices.Contains(standardCategoryOrder, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if categoryKeywordsMatch(normalized, set.Categories[name]) {
			return Classification{Intent: core.IntentCategory, Category: name}
		}
	}

	return Classification{Intent: core.IntentUnknown}
}

// categoryKeywordsMatch reports whether the query hits any record keyword
// in the category, by substring containment in either direction or a
// similarity ratio above the fallback threshold.
func categoryKeywordsMatch(query string, category core.Category) bool {
	for _, record := range category.Records {
		for _, keyword := range record.Keywords {
			keyword = Normalize(keyword)
			if containsEither(query, keyword) {
				return true
			}
			if Ratio(query, keyword) > dynamicFallbackRatio {
				return true
			}
		}
	}
	return false
}

// containsEither reports substring containment in either direction.
// Empty strings never match.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
