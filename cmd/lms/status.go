package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XetPy1030/Lbrary-Management/internal/library"
	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <new-status>",
	Short: "Update a book's circulation status",
	Long: fmt.Sprintf(`Update the circulation status of a book.

The status must be one of the two catalog literals:
  %q  (available)
  %q  (issued)`, model.StatusAvailable, model.StatusIssued),
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	if err := lib.UpdateStatus(id, args[1]); err != nil {
		// Unknown id and bad literal are guidance, not failures.
		var nf *library.NotFoundError
		var inv *library.InvalidStatusError
		if errors.As(err, &nf) || errors.As(err, &inv) {
			fmt.Println(err.Error())
			return nil
		}
		return err
	}

	fmt.Printf("Status of book %d set to %q\n", id, args[1])
	return nil
}
