package portfolio

import "strings"

// DefaultSearchLimit is the result cap applied when the caller gives none.
const DefaultSearchLimit = 10

// ─── Result shapes ───────────────────────────────────────────────────────────
//
// Field order is the JSON key order clients see.

// SearchResult is the output of Search.
type SearchResult struct {
	Query        string   `json:"query"`
	Category     string   `json:"category"`
	ResultsCount int      `json:"resultsCount"`
	Results      []Record `json:"results"`
}

// CategoriesResult is the output of Categories.
type CategoriesResult struct {
	Categories []string `json:"categories"`
	TotalItems int      `json:"totalItems"`
}

// ContactResult is the output of Contact.
type ContactResult struct {
	Contact []Record `json:"contact"`
}

// TechStackResult is the output of TechStack.
type TechStackResult struct {
	TechStack  []Record `json:"techStack"`
	FilterType string   `json:"filterType"`
}

// ─── Queries ─────────────────────────────────────────────────────────────────

// Search returns records whose title, description and keywords contain query,
// case-insensitively. A non-empty category restricts results to records whose
// category equals it ignoring case. Matches keep store order and are cut to
// the first limit entries; a negative limit behaves like zero.
func (s *Store) Search(query, category string, limit int) SearchResult {
	needle := strings.ToLower(query)
	wantCategory := strings.ToLower(category)

	matches := s.filter(func(r Record) bool {
		if category != "" && strings.ToLower(r.Category) != wantCategory {
			return false
		}
		return strings.Contains(searchableText(r), needle)
	})

	if limit < 0 {
		limit = 0
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	echo := category
	if echo == "" {
		echo = allFilter
	}

	return SearchResult{
		Query:        query,
		Category:     echo,
		ResultsCount: len(matches),
		Results:      matches,
	}
}

// Categories lists distinct categories in first-occurrence order. Categories
// differing only in case are distinct.
func (s *Store) Categories() CategoriesResult {
	seen := make(map[string]struct{}, len(s.records))
	cats := []string{}
	for _, r := range s.records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		cats = append(cats, r.Category)
	}
	return CategoriesResult{
		Categories: cats,
		TotalItems: len(s.records),
	}
}

// Item returns the first record with the given id, or a *NotFoundError.
func (s *Store) Item(id int64) (Record, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, &NotFoundError{ID: id}
}

// Contact returns every record whose category is exactly CategoryContact.
func (s *Store) Contact() ContactResult {
	return ContactResult{
		Contact: s.filter(func(r Record) bool { return r.Category == CategoryContact }),
	}
}

// TechStack returns records whose category is exactly CategoryTechStack. A
// non-empty techType keeps only those whose title contains it, ignoring case.
func (s *Store) TechStack(techType string) TechStackResult {
	needle := strings.ToLower(techType)
	items := s.filter(func(r Record) bool {
		if r.Category != CategoryTechStack {
			return false
		}
		return techType == "" || strings.Contains(strings.ToLower(r.Title), needle)
	})

	echo := techType
	if echo == "" {
		echo = allFilter
	}
	return TechStackResult{TechStack: items, FilterType: echo}
}

// searchableText joins title, description and keywords with single spaces,
// lower-cased.
func searchableText(r Record) string {
	parts := make([]string, 0, len(r.Keywords)+2)
	parts = append(parts, r.Title, r.Description)
	parts = append(parts, r.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
