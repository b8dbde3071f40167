// Package main is the entry point for the lms CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/XetPy1030/Lbrary-Management/internal/cli"
	"github.com/XetPy1030/Lbrary-Management/internal/library"
	"github.com/XetPy1030/Lbrary-Management/internal/storage"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lms",
	Short: "lms - a personal library catalog",
	Long: `lms keeps a catalog of your books in a single JSON file.

Each book has a title, an author, a publication year and a circulation
status. Running lms without a subcommand starts the interactive menu;
the subcommands cover the same operations for scripting.`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runShell,
}

var (
	flagFile    string
	flagVerbose bool
	flagColor   string
)

// dataFile is the resolved backing file path, set by setup.
var dataFile = storage.DefaultDataFile

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("lms version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "path to the catalog file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "color output: auto, always or never")

	rootCmd.PersistentPreRunE = setup
}

// setup wires logging, resolves the config file and applies the color
// mode before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !cli.IsTerminal(os.Stderr),
	})))

	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}

	dataFile = cfg.DataFile
	if flagFile != "" {
		dataFile = flagFile
	}

	mode := cfg.Color
	if flagColor != "" {
		mode = flagColor
	}
	switch mode {
	case "always":
		cli.SetColorEnabled(true)
	case "never":
		cli.SetColorEnabled(false)
	case "auto", "":
		// keep terminal detection
	default:
		return fmt.Errorf("invalid --color value %q (expected auto, always or never)", mode)
	}

	return nil
}

// openLibrary opens the catalog bound to the resolved backing file.
func openLibrary() (*library.Library, error) {
	lib, err := library.Open(storage.New(dataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return lib, nil
}
