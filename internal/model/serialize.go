package model

import "fmt"

// Record is the flat key-value representation of a Book used for
// persistence. Fields are pointers so that keys absent from a decoded
// document survive as nil and can be rejected explicitly instead of
// silently becoming zero values.
type Record struct {
	ID     *int    `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Status *string `json:"status"`
}

// Serialize converts a Book into its persistence record.
func Serialize(b Book) Record {
	status := string(b.Status)
	return Record{
		ID:     &b.ID,
		Title:  &b.Title,
		Author: &b.Author,
		Year:   &b.Year,
		Status: &status,
	}
}

// Deserialize converts a record back into a Book. It fails when any
// required key is absent or the status literal is not recognized.
func Deserialize(r Record) (Book, error) {
	switch {
	case r.ID == nil:
		return Book{}, fmt.Errorf("record is missing %q", "id")
	case r.Title == nil:
		return Book{}, fmt.Errorf("record is missing %q", "title")
	case r.Author == nil:
		return Book{}, fmt.Errorf("record is missing %q", "author")
	case r.Year == nil:
		return Book{}, fmt.Errorf("record is missing %q", "year")
	case r.Status == nil:
		return Book{}, fmt.Errorf("record is missing %q", "status")
	}

	status, err := ParseStatus(*r.Status)
	if err != nil {
		return Book{}, err
	}

	return Book{
		ID:     *r.ID,
		Title:  *r.Title,
		Author: *r.Author,
		Year:   *r.Year,
		Status: status,
	}, nil
}
