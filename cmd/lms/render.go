package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/XetPy1030/Lbrary-Management/internal/cli"
	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

// renderBooks writes a column-aligned listing of books to w.
func renderBooks(w io.Writer, books []model.Book) {
	table := cli.NewTable()
	table.SetHeader("ID", "TITLE", "AUTHOR", "YEAR", "STATUS")
	table.SetMaxWidth(1, cli.DefaultMaxTitleWidth)
	for _, b := range books {
		table.AddRow(
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
			formatStatus(b.Status),
		)
	}
	table.Render(w)
}

func formatStatus(s model.Status) string {
	switch s {
	case model.StatusAvailable:
		return cli.Green(string(s))
	case model.StatusIssued:
		return cli.Yellow(string(s))
	}
	return string(s)
}

// parseID parses a user-supplied book id, rejecting non-numeric input
// before it reaches the catalog.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("id must be a number, got %q", arg)
	}
	return id, nil
}
