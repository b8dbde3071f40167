package library

import (
	"sort"
	"strings"

	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

// SortField selects the key used to order filtered results.
type SortField string

const (
	SortByID     SortField = "id"
	SortByTitle  SortField = "title"
	SortByAuthor SortField = "author"
	SortByYear   SortField = "year"
)

// ParseSortField parses a sort field name.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByID, SortByTitle, SortByAuthor, SortByYear:
		return SortField(s), nil
	}
	return "", &ValidationError{Field: "sort", Message: "must be one of id, title, author, year"}
}

// FilterOptions specifies filtering and ordering for Filter.
type FilterOptions struct {
	Status     model.Status // Limit to one status. Empty = any.
	Keyword    string       // Same matching rules as Search. Empty = all.
	SortBy     SortField    // Empty = collection order.
	Descending bool
}

// Filter returns the books matching opts. With no SortBy the result
// keeps collection order; otherwise the sort is stable with the id as
// tiebreaker.
func (l *Library) Filter(opts FilterOptions) []model.Book {
	source := l.books
	if opts.Keyword != "" {
		source = l.Search(opts.Keyword)
	}

	var results []model.Book
	for _, b := range source {
		if opts.Status != "" && b.Status != opts.Status {
			continue
		}
		results = append(results, b)
	}

	if opts.SortBy != "" {
		sortBooks(results, opts.SortBy, opts.Descending)
	}
	return results
}

func sortBooks(books []model.Book, by SortField, descending bool) {
	sort.SliceStable(books, func(i, j int) bool {
		a, b := books[i], books[j]
		if descending {
			a, b = b, a
		}
		return compareBooks(a, b, by)
	})
}

func compareBooks(a, b model.Book, by SortField) bool {
	var less, equal bool

	switch by {
	case SortByTitle:
		t1, t2 := strings.ToLower(a.Title), strings.ToLower(b.Title)
		less, equal = t1 < t2, t1 == t2
	case SortByAuthor:
		a1, a2 := strings.ToLower(a.Author), strings.ToLower(b.Author)
		less, equal = a1 < a2, a1 == a2
	case SortByYear:
		less, equal = a.Year < b.Year, a.Year == b.Year
	default:
		less, equal = a.ID < b.ID, a.ID == b.ID
	}

	// Tiebreaker: ids are unique, so ordering stays deterministic.
	if equal {
		return a.ID < b.ID
	}
	return less
}
