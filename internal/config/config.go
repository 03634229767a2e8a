// Package config provides configuration types and defaults for lazycsv.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/funkybooboo/lazycsv/internal/log"
	"github.com/funkybooboo/lazycsv/internal/nav"
)

// Config holds all configuration options for lazycsv.
type Config struct {
	// Delimiter is the field separator, a single character. Empty means
	// comma.
	Delimiter string `mapstructure:"delimiter"`

	// NoHeaders treats the first row as data; column names become
	// Column 1, Column 2 and so on.
	NoHeaders bool `mapstructure:"no_headers"`

	// Encoding is an IANA label like "latin1" or "windows-1252". Empty
	// means UTF-8.
	Encoding string `mapstructure:"encoding"`

	// AutoReload reloads files when they change on disk.
	AutoReload bool `mapstructure:"auto_reload"`

	UI UIConfig `mapstructure:"ui"`
}

// UIConfig holds grid display options.
type UIConfig struct {
	// ShowStatusBar keeps the bottom status line visible. Turning it
	// off frees one grid row; the line still appears while the command
	// prompt is open or a message is pending.
	ShowStatusBar bool `mapstructure:"show_status_bar"`

	MaxVisibleColumns int `mapstructure:"max_visible_columns"`
	MaxCellWidth      int `mapstructure:"max_cell_width"`
}

// DefaultMaxCellWidth is the cell display width before truncation.
const DefaultMaxCellWidth = 20

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoReload: true,
		UI: UIConfig{
			ShowStatusBar:     true,
			MaxVisibleColumns: nav.DefaultVisibleColumns,
			MaxCellWidth:      DefaultMaxCellWidth,
		},
	}
}

// DelimiterRune returns the configured delimiter as a rune, or 0 when
// unset. Call Validate first; a multi-character delimiter yields its
// first rune here.
func (c Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if err := ValidateDelimiter(c.Delimiter); err != nil {
		return err
	}
	if err := ValidateEncoding(c.Encoding); err != nil {
		return err
	}
	if c.UI.MaxVisibleColumns < 1 {
		return fmt.Errorf("ui.max_visible_columns must be at least 1, got %d", c.UI.MaxVisibleColumns)
	}
	if c.UI.MaxCellWidth < 1 {
		return fmt.Errorf("ui.max_cell_width must be at least 1, got %d", c.UI.MaxCellWidth)
	}
	return nil
}

// ValidateDelimiter rejects anything longer than one character. Empty
// is fine and means comma.
func ValidateDelimiter(s string) error {
	if s != "" && utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return nil
}

// ValidateEncoding rejects labels the IANA index does not know. Empty
// is fine and means UTF-8.
func ValidateEncoding(label string) error {
	if label == "" {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return fmt.Errorf("unsupported encoding %q", label)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/lazycsv/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lazycsv", "config.yaml"), nil
}

const defaultTemplate = `# LazyCSV Configuration

# Field delimiter, a single character (default: comma)
# delimiter: ";"

# Treat the first row as data instead of headers
no_headers: false

# Text encoding, an IANA label (default: utf-8)
# Examples: latin1, windows-1252, shift_jis
# encoding: latin1

# Reload files automatically when they change on disk
auto_reload: true

# UI settings
ui:
  show_status_bar: true     # Bottom status line with position and mode
  max_visible_columns: 10   # Columns shown before horizontal scrolling
  max_cell_width: 20        # Cell display width before truncation
`

// DefaultConfigTemplate is the annotated YAML written on first run.
// Commented-out keys document their defaults without pinning them.
func DefaultConfigTemplate() string {
	return defaultTemplate
}

// WriteDefaultConfig writes the annotated template to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultTemplate), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "wrote default config", "path", configPath)
	return nil
}
