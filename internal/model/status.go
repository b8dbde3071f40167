package model

import "fmt"

// Status represents the circulation status of a book. The string value
// is the exact literal written to the backing file and shown to users.
type Status string

const (
	StatusAvailable Status = "в наличии"
	StatusIssued    Status = "выдана"
)

// Statuses lists the recognized status values in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusIssued}
}

// ParseStatus parses s as a status literal. Only the two recognized
// literals are valid; anything else is an error.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusIssued:
		return StatusIssued, nil
	}
	return "", fmt.Errorf("unrecognized status %q (expected %q or %q)", s, StatusAvailable, StatusIssued)
}
