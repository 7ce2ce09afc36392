// Package config loads the YAML configuration of the dossier renderer.
//
// A configuration file looks like:
//
//	page:
//	  size: a4
//	  unit: mm
//	  margin: 17
//	fonts:
//	  dir: /usr/share/fonts/dossier
//	  regular: NotoSans-Regular.ttf
//	document:
//	  author: Arbitration desk
//	logging:
//	  level: debug
//	  format: json
//
// Every field is optional.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/composer"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/fonts"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/layout"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/writer"
)

// ErrConfigurationError is wrapped by every validation error.
var ErrConfigurationError = errors.New("configuration error")

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError wrapping ErrConfigurationError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: ErrConfigurationError}
}

// Default values.
const (
	DefaultPageSize = "a4"
	DefaultUnit     = "pt"
	DefaultMargin   = 48.0
)

// MarginsConfig sets each page margin on its own.
type MarginsConfig struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

// PageConfig contains the page geometry.
type PageConfig struct {
	// Size is a page size name such as "a4", "letter" or "a4-landscape".
	Size string `yaml:"size" json:"size,omitempty"`

	// Unit is the unit of the margins: pt, mm, cm or in.
	Unit string `yaml:"unit" json:"unit,omitempty"`

	// Margin is used for all four sides unless Margins is given.
	Margin float64 `yaml:"margin" json:"margin,omitempty"`

	// Margins overrides Margin side by side.
	Margins *MarginsConfig `yaml:"margins" json:"margins,omitempty"`
}

// SetDefaults sets default values for the page configuration.
func (c *PageConfig) SetDefaults() {
	if c.Size == "" {
		c.Size = DefaultPageSize
	}
	if c.Unit == "" {
		c.Unit = DefaultUnit
	}
	if c.Margin == 0 && c.Margins == nil {
		unit, err := layout.ParseUnit(c.Unit)
		if err == nil {
			c.Margin = layout.FromPoints(DefaultMargin, unit)
		}
	}
}

// Layout returns the page layout described by c.
func (c *PageConfig) Layout() (*layout.PageLayout, error) {
	size, ok := layout.PageSizeByName(c.Size)
	if !ok {
		return nil, NewConfigError("page.size",
			fmt.Sprintf("unknown page size %q (known: %s)", c.Size, strings.Join(layout.PageSizeNames(), ", ")))
	}
	unit, err := layout.ParseUnit(c.Unit)
	if err != nil {
		return nil, &ConfigError{Field: "page.unit", Message: err.Error(), Err: ErrConfigurationError}
	}

	margins := layout.UniformMargins(c.Margin)
	if c.Margins != nil {
		margins = layout.Margins{
			Top:    c.Margins.Top,
			Right:  c.Margins.Right,
			Bottom: c.Margins.Bottom,
			Left:   c.Margins.Left,
		}
	}
	if margins.Top < 0 || margins.Right < 0 || margins.Bottom < 0 || margins.Left < 0 {
		return nil, NewConfigError("page.margins", "margins cannot be negative")
	}

	pl := layout.NewPageLayout(size).SetMargins(margins.Scale(unit))
	if err := pl.Validate(); err != nil {
		return nil, &ConfigError{Field: "page.margins", Message: err.Error(), Err: ErrConfigurationError}
	}
	return pl, nil
}

// FontsConfig names the font file of each style. Files are looked up in
// Dir first and then among the bundled fonts.
type FontsConfig struct {
	Dir     string `yaml:"dir" json:"dir,omitempty"`
	Regular string `yaml:"regular" json:"regular,omitempty"`
	Italic  string `yaml:"italic" json:"italic,omitempty"`
	Bold    string `yaml:"bold" json:"bold,omitempty"`
	Mono    string `yaml:"mono" json:"mono,omitempty"`
}

// Validate validates the fonts configuration.
func (c *FontsConfig) Validate() error {
	if c.Dir == "" {
		return nil
	}
	fi, err := os.Stat(c.Dir)
	if err != nil {
		return &ConfigError{Field: "fonts.dir", Message: err.Error(), Err: ErrConfigurationError}
	}
	if !fi.IsDir() {
		return NewConfigError("fonts.dir", fmt.Sprintf("%s is not a directory", c.Dir))
	}
	return nil
}

// Cache returns a font cache reading from Dir, or the shared cache of
// bundled fonts when no directory is set.
func (c *FontsConfig) Cache() *fonts.Cache {
	if c.Dir == "" {
		return fonts.DefaultCache()
	}
	return fonts.NewCache(fonts.DirLoader(c.Dir))
}

// DocumentConfig contains document information entries added to every
// rendered file.
type DocumentConfig struct {
	Author   string `yaml:"author" json:"author,omitempty"`
	Creator  string `yaml:"creator" json:"creator,omitempty"`
	Producer string `yaml:"producer" json:"producer,omitempty"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level,omitempty"`

	// Format is the log format (text, json).
	Format string `yaml:"format" json:"format,omitempty"`

	// Output is the log output (stdout, stderr, or file path).
	Output string `yaml:"output" json:"output,omitempty"`
}

// SetDefaults sets default values for logging configuration.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates the logging configuration.
func (c *LoggingConfig) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return NewConfigError("logging.level", fmt.Sprintf("unknown level %q", c.Level))
	}
	switch c.Format {
	case "text", "json":
	default:
		return NewConfigError("logging.format", fmt.Sprintf("unknown format %q", c.Format))
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the configured logger. The returned closer releases the
// log file, if any.
func (c *LoggingConfig) NewLogger() (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, nil, NewConfigError("logging.level", fmt.Sprintf("unknown level %q", c.Level))
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	switch c.Output {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch c.Format {
	case "json":
		h = slog.NewJSONHandler(out, opts)
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	default:
		closer.Close()
		return nil, nil, NewConfigError("logging.format", fmt.Sprintf("unknown format %q", c.Format))
	}
	return slog.New(h), closer, nil
}

// Config contains the complete renderer configuration.
type Config struct {
	Page     PageConfig     `yaml:"page" json:"page"`
	Fonts    FontsConfig    `yaml:"fonts" json:"fonts"`
	Document DocumentConfig `yaml:"document" json:"document"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config
	c.SetDefaults()
	return &c
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	c.Page.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	if _, err := c.Page.Layout(); err != nil {
		return err
	}
	if err := c.Fonts.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// ComposerOptions converts the configuration into composer options.
func (c *Config) ComposerOptions() (composer.Options, error) {
	pl, err := c.Page.Layout()
	if err != nil {
		return composer.Options{}, err
	}
	return composer.Options{
		PageSize: pl.Size,
		Margins:  pl.Margins,
		Fonts: composer.FontSet{
			Regular: c.Fonts.Regular,
			Italic:  c.Fonts.Italic,
			Bold:    c.Fonts.Bold,
			Mono:    c.Fonts.Mono,
		},
		Cache: c.Fonts.Cache(),
		Info: writer.Info{
			Author:   c.Document.Author,
			Creator:  c.Document.Creator,
			Producer: c.Document.Producer,
		},
	}, nil
}

// LoadConfig loads a configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data, applies defaults and
// validates the result. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
