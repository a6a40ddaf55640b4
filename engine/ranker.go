package engine

import (
	"slices"
	"strings"

	"github.com/ranji790/SmartBuddy/core"
)

// Document ranking weight tables: substring match first, fuzzy second.
var (
	rankNameRules = []fieldRule{
		{35, containsEither},
		{20, fuzzyAbove(70)},
	}
	rankFilenameRules = []fieldRule{
		{30, containsEither},
		{15, fuzzyAbove(70)},
	}
	rankKeywordRules = []fieldRule{
		{25, containsEither},
		{15, fuzzyAbove(70)},
	}
)

const (
	rankCueBonus  = 5
	rankThreshold = 10
)

// rankCues are request patterns that add a flat per-document bonus when
// present in the normalized query.
var rankCues = []string{"notes", "material", "study", "pdf"}

// listAllQueries are queries treated as a "list everything" request.
var listAllQueries = []string{"note", "notes", "show notes", "list notes"}

// IsListAllRequest reports whether the normalized query asks for every
// document rather than a ranked search.
func IsListAllRequest(query string) bool {
	normalized := Normalize(query)
	return slices.Contains(listAllQueries, normalized)
}

// SortByUploadTime returns the documents ordered by upload time
// descending (newest first). The input slice is not modified.
func SortByUploadTime(docs []*core.Document) []*core.Document {
	sorted := slices.Clone(docs)
	slices.SortFunc(sorted, func(a, b *core.Document) int {
		if a.UploadedAt.After(b.UploadedAt) {
			return -1
		}
		if a.UploadedAt.Before(b.UploadedAt) {
			return 1
		}
		return 0
	})
	return sorted
}

// Rank scores documents against the synonym-expanded query and returns
// those above the threshold, most relevant first. Ties are broken by the
// most recent upload. A "list everything" query skips scoring and returns
// all documents ordered by upload time descending.
func Rank(query string, docs []*core.Document, table core.SynonymTable) []*core.Document {
	if IsListAllRequest(query) {
		return SortByUploadTime(docs)
	}

	normalized := Normalize(query)
	terms := ExpandQuery(query, table)

	cueBonus := 0.0
	for _, cue := range rankCues {
		if strings.Contains(normalized, cue) {
			cueBonus = rankCueBonus
			break
		}
	}

	type scored struct {
		doc   *core.Document
		score float64
	}
	var results []scored

	for _, doc := range docs {
		score := 0.0
		name := Normalize(doc.DisplayName)
		stem := Normalize(filenameStem(doc.Filename))
		keywords := make([]string, 0, len(doc.Keywords))
		for _, k := range doc.Keywords {
			keywords = append(keywords, Normalize(k))
		}

		for term := range terms {
			score += applyRules(rankNameRules, term, name)
			score += applyRules(rankFilenameRules, term, stem)
			for _, keyword := range keywords {
				score += applyRules(rankKeywordRules, term, keyword)
			}
		}
		score += cueBonus

		if score > rankThreshold {
			results = append(results, scored{doc: doc, score: score})
		}
	}

	slices.SortFunc(results, func(a, b scored) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		if a.doc.UploadedAt.After(b.doc.UploadedAt) {
			return -1
		}
		if a.doc.UploadedAt.Before(b.doc.UploadedAt) {
			return 1
		}
		return 0
	})

	ranked := make([]*core.Document, 0, len(results))
	for _, r := range results {
		ranked = append(ranked, r.doc)
	}
	return ranked
}

// filenameStem strips everything from the first dot onward.
func filenameStem(filename string) string {
	if i := strings.IndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}
