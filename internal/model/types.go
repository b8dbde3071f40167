// Package model defines the core data structures for lms.
package model

// Book represents a single catalog entry. IDs are assigned by the
// library when a book is added, never by the caller.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}
