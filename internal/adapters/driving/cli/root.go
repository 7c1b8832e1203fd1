// Package cli implements the symbolkit command-line interface using
// cobra. Commands hold no business logic; they parse flags, call the
// driving ports and render the result.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flagforge/symbolkit/internal/core/ports/driving"
	"github.com/flagforge/symbolkit/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose is bound to the persistent --verbose flag.
var verbose bool

// Services injected by the composition root before Execute runs.
var (
	converter      driving.Converter
	libraryService driving.LibraryService
)

var rootCmd = &cobra.Command{
	Use:   "symbolkit",
	Short: "Convert SVG files into a symbol library",
	Long: `symbolkit converts directories of SVG files (flags, coats of arms,
emblems) into a single JSON symbol library ready for embedding in a
web application.

Each SVG is cleaned, its innermost meaningful fragment extracted, and
the result merged into the library by id so repeated runs stay
idempotent.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-file progress to stderr")
}

// SetServices injects the driving-port implementations. The composition
// root calls it once before Execute; commands fail with a clear error if
// it was skipped.
func SetServices(c driving.Converter, l driving.LibraryService) {
	converter = c
	libraryService = l
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() {
	applyConfigDefaults()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
