package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

var (
	libraryPath string
	libraryJSON bool
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect a produced symbol library",
	Long:  `List or show entries in a symbol library file.`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library entries",
	RunE:  runLibraryList,
}

var libraryShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single entry",
	Long: `Shows one library entry. When stdout is a pipe the raw SVG markup is
printed instead of the summary, so the entry can be fed straight into
another tool:

  symbolkit library show albania > albania.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runLibraryShow,
}

func init() {
	libraryCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", "public/symbols.json", "library file to inspect")
	libraryListCmd.Flags().BoolVar(&libraryJSON, "json", false, "output entries as JSON")
	libraryShowCmd.Flags().BoolVar(&libraryJSON, "json", false, "output the entry as JSON")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	entries, err := libraryService.List(cmd.Context(), libraryPath)
	if err != nil {
		return fmt.Errorf("failed to list library: %w", err)
	}

	if libraryJSON {
		return outputJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Printf("No entries in %s\n", libraryPath)
		return nil
	}

	for i := range entries {
		cmd.Printf("  %-30s %-20s %s\n", entries[i].ID, entries[i].Category, entries[i].Name)
	}
	cmd.Printf("\nTotal: %d entr%s\n", len(entries), pluralY(len(entries)))
	return nil
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	entry, err := libraryService.Get(cmd.Context(), libraryPath, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no entry %q in %s", args[0], libraryPath)
		}
		return fmt.Errorf("failed to load entry: %w", err)
	}

	if libraryJSON {
		return outputJSON(cmd, entry)
	}

	// Piped output gets the bare markup.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.Println(entry.SVG)
		return nil
	}

	cmd.Printf("Symbol: %s\n\n", entry.ID)
	cmd.Printf("  Name:     %s\n", entry.Name)
	cmd.Printf("  Category: %s\n", entry.Category)
	cmd.Printf("  ViewBox:  %s\n", entry.ViewBox)
	if entry.SourceFile != "" {
		cmd.Printf("  Source:   %s\n", entry.SourceFile)
	}
	cmd.Printf("  Markup:   %d bytes\n", len(entry.SVG))
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
