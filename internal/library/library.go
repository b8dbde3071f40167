// Package library implements the in-memory book catalog with
// write-through persistence: every mutation rewrites the backing file.
package library

import (
	"strconv"
	"strings"

	"github.com/XetPy1030/Lbrary-Management/internal/model"
	"github.com/XetPy1030/Lbrary-Management/internal/storage"
)

// Library owns the live collection of books. The slice keeps insertion
// order, which is also id-assignment order until books are removed.
type Library struct {
	storage *storage.Storage
	books   []model.Book
}

// Open loads the full collection from storage once and returns a
// catalog bound to that storage.
func Open(s *storage.Storage) (*Library, error) {
	books, err := s.Load()
	if err != nil {
		return nil, err
	}
	return &Library{storage: s, books: books}, nil
}

// Add appends a new available book and persists the collection.
// The id is one past the highest existing id, starting at 1.
func (l *Library) Add(title, author string, year int) (model.Book, error) {
	if strings.TrimSpace(title) == "" {
		return model.Book{}, &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.TrimSpace(author) == "" {
		return model.Book{}, &ValidationError{Field: "author", Message: "must not be empty"}
	}

	maxID := 0
	for _, b := range l.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	book := model.Book{
		ID:     maxID + 1,
		Title:  title,
		Author: author,
		Year:   year,
		Status: model.StatusAvailable,
	}

	l.books = append(l.books, book)
	if err := l.storage.Save(l.books); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// Remove deletes the book with the given id and persists the
// collection. Returns NotFoundError when no such book exists; the
// collection is untouched in that case.
func (l *Library) Remove(id int) error {
	for i, b := range l.books {
		if b.ID == id {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return l.storage.Save(l.books)
		}
	}
	return &NotFoundError{ID: id}
}

// Search returns every book whose title or author contains keyword
// case-insensitively, or whose publication year matches keyword as an
// exact decimal string. Results keep collection order.
func (l *Library) Search(keyword string) []model.Book {
	kw := strings.ToLower(keyword)
	var results []model.Book
	for _, b := range l.books {
		if strings.Contains(strings.ToLower(b.Title), kw) ||
			strings.Contains(strings.ToLower(b.Author), kw) ||
			keyword == strconv.Itoa(b.Year) {
			results = append(results, b)
		}
	}
	return results
}

// UpdateStatus sets the status of the book with the given id to the
// parsed literal and persists. Returns NotFoundError for an unknown id
// and InvalidStatusError for an unrecognized literal; the book is left
// unchanged on either.
func (l *Library) UpdateStatus(id int, literal string) error {
	for i := range l.books {
		if l.books[i].ID == id {
			status, err := model.ParseStatus(literal)
			if err != nil {
				return &InvalidStatusError{Value: literal}
			}
			l.books[i].Status = status
			return l.storage.Save(l.books)
		}
	}
	return &NotFoundError{ID: id}
}

// List returns a copy of the full collection in current order.
func (l *Library) List() []model.Book {
	out := make([]model.Book, len(l.books))
	copy(out, l.books)
	return out
}

// Get returns the book with the given id.
func (l *Library) Get(id int) (model.Book, error) {
	for _, b := range l.books {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Book{}, &NotFoundError{ID: id}
}

// Count returns the number of books in the collection.
func (l *Library) Count() int {
	return len(l.books)
}
