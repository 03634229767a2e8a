package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/funkybooboo/lazycsv/internal/app"
	"github.com/funkybooboo/lazycsv/internal/config"
	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/log"
	"github.com/funkybooboo/lazycsv/internal/session"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, or
	// the OSC 11 reply can land in the input loop and show up as
	// garbage in the prompt.
	// https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lazycsv [path]",
	Short: "A vim-style terminal CSV viewer",
	Long: `A terminal viewer for CSV files with vim-style navigation.

Open a file or a directory of CSV files and move around with hjkl,
counts (5j), jumps (gg, 15G, :c B) and word motions (w, b, e). Files
reload automatically when they change on disk.

Examples:
  lazycsv data.csv           # open one file; siblings reachable with ] and [
  lazycsv ./exports          # open a directory of CSV files
  lazycsv -d ';' data.csv    # semicolon-separated input
  lazycsv --no-headers raw.csv`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/lazycsv/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log (also enabled by LAZYCSV_DEBUG)")
	rootCmd.Flags().StringP("delimiter", "d", "",
		"field delimiter, a single character (default: comma)")
	rootCmd.Flags().Bool("no-headers", false,
		"treat the first row as data")
	rootCmd.Flags().StringP("encoding", "e", "",
		"text encoding as an IANA label, e.g. latin1")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic reload when files change on disk")

	_ = viper.BindPFlag("delimiter", rootCmd.Flags().Lookup("delimiter"))
	_ = viper.BindPFlag("no_headers", rootCmd.Flags().Lookup("no-headers"))
	_ = viper.BindPFlag("encoding", rootCmd.Flags().Lookup("encoding"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("delimiter", defaults.Delimiter)
	viper.SetDefault("no_headers", defaults.NoHeaders)
	viper.SetDefault("encoding", defaults.Encoding)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.max_visible_columns", defaults.UI.MaxVisibleColumns)
	viper.SetDefault("ui.max_cell_width", defaults.UI.MaxCellWidth)

	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	default:
		// A project-local .lazycsv/config.yaml beats the user config.
		if _, err := os.Stat(".lazycsv/config.yaml"); err == nil {
			viper.SetConfigFile(".lazycsv/config.yaml")
		} else if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lazycsv"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// First run: seed the user config directory with the
			// commented template, then keep going whether or not the
			// write landed.
			if path, pathErr := config.DefaultConfigPath(); pathErr == nil {
				if writeErr := config.WriteDefaultConfig(path); writeErr == nil {
					viper.SetConfigFile(path)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	// Initialize logging if debug mode enabled (via flag or env var)
	if debugFlag || os.Getenv("LAZYCSV_DEBUG") != "" {
		logPath := os.Getenv("LAZYCSV_LOG")
		if logPath == "" {
			logPath = "lazycsv-debug.log"
		}

		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		log.Info(log.CatConfig, "lazycsv starting", "logPath", logPath)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The flag is negated so config can default auto_reload to on.
	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	files, active, err := document.Discover(path)
	if err != nil {
		return err
	}
	log.Info(log.CatSession, "session discovered", "files", len(files), "active", active)

	sess, err := session.New(files, active, document.Options{
		Delimiter: cfg.DelimiterRune(),
		NoHeaders: cfg.NoHeaders,
		Encoding:  cfg.Encoding,
	})
	if err != nil {
		return err
	}

	model, err := app.New(sess, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	// The watcher goroutine must stop even when Run failed.
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running lazycsv: %w", err)
	}
	return nil
}

// Execute dispatches the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion records the build version main injects via ldflags.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
