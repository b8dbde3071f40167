package library

import (
	"fmt"

	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

// NotFoundError indicates that no book with the requested id exists.
// Callers treat it as guidance for the user, not a fatal condition.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book with id %d not found", e.ID)
}

// InvalidStatusError indicates a status literal that is not one of the
// two recognized values. The book it was meant for is left unchanged.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q: use %q or %q", e.Value, model.StatusAvailable, model.StatusIssued)
}

// ValidationError indicates invalid input for a new book.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
