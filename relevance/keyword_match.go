package relevance

import (
	"github.com/cloudflare/ahocorasick"
)

// KeywordMatcher decides whether a listing title is an acceptable match for a
// query. Every keyword must occur as a substring of the title: AND semantics
// trade recall for precision so loosely related items (cases, chargers) are
// rejected rather than ranked.
type KeywordMatcher struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewKeywordMatcher builds a matcher over the given keywords. Keywords are
// expected to be normalized already; empty strings and duplicates are dropped.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	seen := make(map[string]struct{}, len(keywords))
	unique := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}

	return &KeywordMatcher{
		matcher:  ahocorasick.NewStringMatcher(unique),
		keywords: unique,
	}
}

// Len returns the number of distinct keywords.
func (m *KeywordMatcher) Len() int {
	return len(m.keywords)
}

// Matches reports whether every keyword occurs as a substring of title.
// Plain containment, no token boundaries: a single-keyword query "phone"
// matches "headphone". An empty keyword set matches nothing; queries with no
// usable keywords are rejected upstream before any matching happens.
func (m *KeywordMatcher) Matches(title string) bool {
	if len(m.keywords) == 0 || title == "" {
		return false
	}

	hits := m.matcher.MatchThreadSafe([]byte(title))
	found := make(map[int]struct{}, len(hits))
	for _, idx := range hits {
		found[idx] = struct{}{}
	}
	return len(found) == len(m.keywords)
}
