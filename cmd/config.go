package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funkybooboo/lazycsv/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the lazycsv config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the commented default configuration to
~/.config/lazycsv/config.yaml, or to the path given with --config.
Fails if the file already exists.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration value",
	Long: `Set one key in the config file, creating the file if needed.
Comments and unrelated sections are preserved.

Valid keys: ` + strings.Join(config.SettableKeys(), ", ") + `

Examples:
  lazycsv config set delimiter ";"
  lazycsv config set no_headers true
  lazycsv config set ui.max_cell_width 40`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}

// configPath resolves which file the config subcommands operate on.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultConfigPath()
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := config.SetValue(path, args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s in %s\n", args[0], args[1], path)
	return nil
}
