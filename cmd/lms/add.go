package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a book to the catalog",
	Long: `Add a book to the catalog. The id is assigned automatically and the
book starts out available.

Examples:
  lms add "Dune" --author "Frank Herbert" --year 1965
  lms add "Мастер и Маргарита" -a "Михаил Булгаков" -y 1967`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addAuthor string
	addYear   int
)

func init() {
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "book author")
	addCmd.Flags().IntVarP(&addYear, "year", "y", 0, "publication year")
	addCmd.MarkFlagRequired("author")
	addCmd.MarkFlagRequired("year")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	book, err := lib.Add(args[0], addAuthor, addYear)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q with id %d\n", book.Title, book.ID)
	return nil
}
