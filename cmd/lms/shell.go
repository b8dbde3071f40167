package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/XetPy1030/Lbrary-Management/internal/cli"
	"github.com/XetPy1030/Lbrary-Management/internal/library"
	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive menu",
	Long: `Run the interactive menu loop. This is also what lms does when
invoked without a subcommand.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

type menuAction int

const (
	actionAdd menuAction = iota
	actionRemove
	actionSearch
	actionList
	actionStatus
	actionQuit
)

var bannerStyle = lipgloss.NewStyle().Bold(true)

func runShell(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	fmt.Println(bannerStyle.Render("Welcome to the library!"))

	for {
		var action menuAction
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[menuAction]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Add a book", actionAdd),
					huh.NewOption("Remove a book", actionRemove),
					huh.NewOption("Search the catalog", actionSearch),
					huh.NewOption("List all books", actionList),
					huh.NewOption("Update a book's status", actionStatus),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&action),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if action == actionQuit {
			fmt.Println("Bye.")
			return nil
		}

		// Recoverable conditions print guidance and the loop continues.
		if err := runShellAction(lib, action); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			fmt.Println(cli.FormatError(err))
		}
	}
}

func runShellAction(lib *library.Library, action menuAction) error {
	switch action {
	case actionAdd:
		return shellAdd(lib)
	case actionRemove:
		return shellRemove(lib)
	case actionSearch:
		return shellSearch(lib)
	case actionList:
		shellList(lib)
		return nil
	case actionStatus:
		return shellStatus(lib)
	}
	return nil
}

func shellAdd(lib *library.Library) error {
	var title, author, year string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(&title).Validate(requireText("title")),
		huh.NewInput().Title("Author").Value(&author).Validate(requireText("author")),
		huh.NewInput().Title("Year").Value(&year).Validate(requireInt("year")),
	))
	if err := form.Run(); err != nil {
		return err
	}

	// Validated above; Atoi cannot fail here.
	y, _ := strconv.Atoi(strings.TrimSpace(year))
	book, err := lib.Add(strings.TrimSpace(title), strings.TrimSpace(author), y)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q with id %d\n", book.Title, book.ID)
	return nil
}

func shellRemove(lib *library.Library) error {
	id, err := askID("Id of the book to remove")
	if err != nil {
		return err
	}

	if err := lib.Remove(id); err != nil {
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

func shellSearch(lib *library.Library) error {
	var keyword string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Keyword").Value(&keyword),
	))
	if err := form.Run(); err != nil {
		return err
	}

	results := lib.Search(keyword)
	if len(results) == 0 {
		fmt.Println("No books found.")
		return nil
	}

	renderBooks(os.Stdout, results)
	return nil
}

func shellList(lib *library.Library) {
	books := lib.List()
	if len(books) == 0 {
		fmt.Println("The library is empty.")
		return
	}
	renderBooks(os.Stdout, books)
}

func shellStatus(lib *library.Library) error {
	id, err := askID("Id of the book")
	if err != nil {
		return err
	}

	var status model.Status
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[model.Status]().
			Title("New status").
			Options(
				huh.NewOption(string(model.StatusAvailable), model.StatusAvailable),
				huh.NewOption(string(model.StatusIssued), model.StatusIssued),
			).
			Value(&status),
	))
	if err := form.Run(); err != nil {
		return err
	}

	if err := lib.UpdateStatus(id, string(status)); err != nil {
		var nf *library.NotFoundError
		var inv *library.InvalidStatusError
		if errors.As(err, &nf) || errors.As(err, &inv) {
			fmt.Println(err.Error())
			return nil
		}
		return err
	}

	fmt.Printf("Status of book %d set to %q\n", id, status)
	return nil
}

func askID(title string) (int, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&raw).Validate(requireInt("id")),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

// requireText rejects blank input.
func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

// requireInt rejects input that is not a decimal number, so bad ids
// and years never reach the catalog.
func requireInt(field string) func(string) error {
	return func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		return nil
	}
}
