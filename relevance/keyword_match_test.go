package relevance

import (
	"testing"

	"pricescout/text"
)

func TestKeywordMatcher(t *testing.T) {
	testCases := []struct {
		name     string
		keywords []string
		title    string
		expected bool
	}{
		{"AllKeywordsPresent", []string{"widget", "pro", "5000"}, "widget pro 5000 silver edition", true},
		{"AccessoryStillContainsAll", []string{"widget", "pro", "5000"}, "case for widget pro 5000", true},
		{"OneKeywordMissing", []string{"widget", "pro", "5000"}, "widget pro 4000", false},
		{"OrderIrrelevant", []string{"pro", "widget"}, "the widget that goes pro", true},
		{"SubstringContainment", []string{"phone"}, "sony wireless headphone", true},
		{"NoKeywordsMatchNothing", nil, "widget pro 5000", false},
		{"EmptyTitle", []string{"widget"}, "", false},
		{"DuplicateKeywords", []string{"widget", "widget"}, "widget", true},
		{"SingleMiss", []string{"widget"}, "gadget pro", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewKeywordMatcher(tc.keywords)
			if got := m.Matches(tc.title); got != tc.expected {
				t.Errorf("Matches(%q) with keywords %v = %v, want %v",
					tc.title, tc.keywords, got, tc.expected)
			}
		})
	}
}

func TestKeywordMatcherWithNormalizedQuery(t *testing.T) {
	m := NewKeywordMatcher(text.Tokenize("Widget Pro 5000"))

	if m.Len() != 3 {
		t.Fatalf("expected 3 keywords, got %d", m.Len())
	}
	if !m.Matches(text.Normalize("Widget Pro 5000 Case")) {
		t.Error("expected accessory title to satisfy AND-containment")
	}
	if m.Matches(text.Normalize("Widget Max 5000")) {
		t.Error("expected title missing a keyword to be rejected")
	}
}
