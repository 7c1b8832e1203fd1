package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// Recognised configuration keys and the convert flags they default.
var configKeys = map[string]string{
	"convert.out":      "default output library file",
	"convert.category": "default entry category",
	"convert.recolor":  "default recolor mode",
	"convert.verbose":  "always print per-file progress",
}

// configStore is injected by the composition root.
var configStore driven.ConfigStore

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent configuration",
	Long: `View and set configuration values stored in the symbolkit config file.
Configured values become the defaults for the matching convert flags.`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// SetConfigStore injects the configuration store.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-20s (not set)  %s\n", key, configKeys[key])
			continue
		}
		cmd.Printf("  %-20s %-10v %s\n", key, value, configKeys[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if _, known := configKeys[key]; !known {
		return fmt.Errorf("unknown key %q", key)
	}

	// Booleans are stored typed so GetBool works.
	var value any = raw
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

// applyConfigDefaults overrides built-in flag defaults with configured
// values. It runs before flag parsing, so explicit flags still win.
func applyConfigDefaults() {
	if configStore == nil {
		return
	}
	if v := configStore.GetString("convert.out"); v != "" {
		convertOut = v
	}
	if v := configStore.GetString("convert.category"); v != "" {
		convertCategory = v
	}
	if v := configStore.GetString("convert.recolor"); v != "" {
		convertRecolor = v
	}
	if configStore.GetBool("convert.verbose") {
		verbose = true
	}
}
