package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flagforge/symbolkit/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the symbol library interactively",
	Long: `Launch an interactive terminal browser over a symbol library file.

Controls:
  ↑/k, ↓/j - Navigate entries
  /        - Filter by id or name
  Enter    - Toggle entry details
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&libraryPath, "library", "l", "public/symbols.json", "library file to browse")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Library:     libraryService,
		LibraryPath: libraryPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
