package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XetPy1030/Lbrary-Management/internal/library"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a book from the catalog",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	if err := lib.Remove(id); err != nil {
		// An unknown id is guidance for the user, not a failure.
		var nf *library.NotFoundError
		if errors.As(err, &nf) {
			fmt.Println(nf.Error())
			return nil
		}
		return err
	}

	fmt.Printf("Removed book %d\n", id)
	return nil
}
