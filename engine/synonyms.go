package engine

import (
	"strings"

	"github.com/ranji790/SmartBuddy/core"
)

// Expand returns the single-hop synonym expansion of token. The result
// always contains token itself. For every group whose canonical key equals
// token or whose members include token, the canonical key and every member
// are added. Terms pulled in by one group are never re-expanded through
// another, so expansion is not transitively closed across chained groups.
func Expand(token string, table core.SynonymTable) map[string]bool {
	terms := map[string]bool{token: true}
	for canonical, synonyms := range table {
		member := token == canonical
		for _, syn := range synonyms {
			if token == syn {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		terms[canonical] = true
		for _, syn := range synonyms {
			terms[syn] = true
		}
	}
	return terms
}

// ExpandQuery normalizes text, splits it on whitespace, and unions the
// expansion of every token together with the original token set.
func ExpandQuery(text string, table core.SynonymTable) map[string]bool {
	terms := make(map[string]bool)
	for _, token := range strings.Fields(Normalize(text)) {
		for term := range Expand(token, table) {
			terms[term] = true
		}
	}
	return terms
}
