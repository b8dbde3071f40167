package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <keyword>",
	Aliases: []string{"find"},
	Short:   "Search books by title, author or year",
	Long: `Search books whose title or author contains the keyword
(case-insensitive), or whose publication year equals it exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	results := lib.Search(args[0])
	if len(results) == 0 {
		fmt.Println("No books found.")
		return nil
	}

	renderBooks(os.Stdout, results)
	return nil
}
