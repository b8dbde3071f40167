package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/XetPy1030/Lbrary-Management/internal/library"
	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List books in the catalog",
	Long: `List books with optional filtering.

Filter flags:
  --available   Show only available books
  --issued      Show only issued books
  --sort        Sort by id, title, author or year
  --desc        Reverse the sort order

Without --sort, books appear in catalog order.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listAvailable bool
	listIssued    bool
	listSort      string
	listDesc      bool
)

func init() {
	listCmd.Flags().BoolVar(&listAvailable, "available", false, "show only available books")
	listCmd.Flags().BoolVar(&listIssued, "issued", false, "show only issued books")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort by id, title, author or year")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "reverse the sort order")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listAvailable && listIssued {
		return fmt.Errorf("conflicting status filters: --available, --issued (use only one at a time)")
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	opts := library.FilterOptions{Descending: listDesc}
	switch {
	case listAvailable:
		opts.Status = model.StatusAvailable
	case listIssued:
		opts.Status = model.StatusIssued
	}
	if listSort != "" {
		opts.SortBy, err = library.ParseSortField(listSort)
		if err != nil {
			return err
		}
	}

	books := lib.Filter(opts)
	if len(books) == 0 {
		if lib.Count() == 0 {
			fmt.Println("The library is empty.")
		} else {
			fmt.Println("No books match.")
		}
		return nil
	}

	renderBooks(os.Stdout, books)
	return nil
}
