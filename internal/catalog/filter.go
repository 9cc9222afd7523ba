package catalog

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterValue is the text a query is matched against: every piece of text
// the row can show, so rows without a title still match their body.
func (e Entry) FilterValue() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{e.Title, e.Subtitle, e.Markdown, e.Source} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Filter returns a copy of doc keeping only the rows that fuzzily match
// query, best matches first. Sections left without rows are dropped. An
// empty query returns doc unchanged.
func Filter(doc *Document, query string) *Document {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return doc
	}

	filtered := &Document{Header: doc.Header}
	for _, section := range doc.Sections {
		words := make([]string, len(section.Rows))
		for i, e := range section.Rows {
			words[i] = strings.ToLower(e.FilterValue())
		}

		matches := fuzzy.Find(query, words)
		if len(matches) == 0 {
			continue
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score > matches[j].Score
		})

		rows := make([]Entry, 0, len(matches))
		for _, match := range matches {
			rows = append(rows, section.Rows[match.Index])
		}
		filtered.Sections = append(filtered.Sections, Section{Title: section.Title, Rows: rows})
	}
	return filtered
}
