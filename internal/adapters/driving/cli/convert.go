package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

var (
	convertOut      string
	convertCategory string
	convertPrefix   string
	convertRecolor  string
	convertStrip    bool
	convertKeepIDs  bool
	convertWatch    bool
	convertNoCache  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-dir]",
	Short: "Convert a directory of SVG files into the symbol library",
	Long: `Converts every .svg file in the input directory into a library entry
and merges the entries into the output file. Existing entries with other
ids are preserved; entries with the same id are overwritten.

Examples:
  # Convert flags/ into the default library
  symbolkit convert flags

  # Tint-ready monochrome symbols with a shared id prefix
  symbolkit convert flags --prefix flag- --strip-colors --recolor tintReady

  # Re-convert whenever the directory changes
  symbolkit convert flags --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "public/symbols.json", "output library file")
	convertCmd.Flags().StringVar(&convertCategory, "category", "Symbols", "category stamped onto produced entries")
	convertCmd.Flags().StringVar(&convertPrefix, "prefix", "", "prefix prepended to derived ids")
	convertCmd.Flags().StringVar(&convertRecolor, "recolor", "keep", "color mode: keep, tintReady or mono:<hex>")
	convertCmd.Flags().BoolVar(&convertStrip, "strip-colors", false, "remove explicit fill/stroke declarations")
	convertCmd.Flags().BoolVar(&convertKeepIDs, "keep-ids", false, "preserve original element ids and classes")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-run conversion when the input directory changes")
	convertCmd.Flags().BoolVar(&convertNoCache, "no-cache", false, "reprocess files even when unchanged since the last run")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("convert service not configured")
	}

	recolor, err := domain.ParseRecolorMode(convertRecolor)
	if err != nil {
		return err
	}

	opts := domain.ConvertOptions{
		InputDir:            args[0],
		OutputPath:          convertOut,
		Category:            convertCategory,
		IDPrefix:            convertPrefix,
		Recolor:             recolor,
		StripColors:         convertStrip,
		PreserveIdentifiers: convertKeepIDs,
		NoCache:             convertNoCache,
	}

	if convertWatch {
		cmd.Printf("Watching %s (ctrl-c to stop)...\n", opts.InputDir)
		return converter.Watch(cmd.Context(), opts)
	}

	report, err := converter.Convert(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	cmd.Printf("Converted %d file(s) into %s", report.Processed, opts.OutputPath)
	if report.Cached > 0 {
		cmd.Printf(" (%d cached)", report.Cached)
	}
	if report.Failed > 0 {
		cmd.Printf(", %d skipped", report.Failed)
	}
	cmd.Println()

	if report.KeptExisting > 0 {
		cmd.Printf("Kept %d existing entr%s.\n", report.KeptExisting, pluralY(report.KeptExisting))
	}
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
