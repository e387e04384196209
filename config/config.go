// Package config loads tunables for value trees from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/valtree/debug"
	"github.com/signadot/valtree/dict"

	"github.com/goccy/go-yaml"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	KeyTable KeyTable `json:"keyTable"`
	Log      Log      `json:"log"`
}

// KeyTable mirrors dict.TableOptions.
type KeyTable struct {
	MinCapacity    int `json:"minCapacity"`
	MaxLoadPercent int `json:"maxLoadPercent"`
	MaxEntries     int `json:"maxEntries"`
}

type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level"`
	// Format is text or json.
	Format string `json:"format"`
}

func Default() *Config {
	o := dict.DefaultTableOptions()
	return &Config{
		KeyTable: KeyTable{
			MinCapacity:    o.MinCapacity,
			MaxLoadPercent: o.MaxLoadPercent,
			MaxEntries:     o.MaxEntries,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Parse reads a YAML document over the defaults. Unknown fields are
// errors.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.UnmarshalWithOptions(data, c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if debug.Config() {
		debug.Logf("config:\n%s", c)
	}
	return c, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) TableOptions() dict.TableOptions {
	return dict.TableOptions{
		MinCapacity:    c.KeyTable.MinCapacity,
		MaxLoadPercent: c.KeyTable.MaxLoadPercent,
		MaxEntries:     c.KeyTable.MaxEntries,
	}
}

func (c *Config) Validate() error {
	if err := c.TableOptions().Validate(); err != nil {
		return fmt.Errorf("%w: keyTable: %w", ErrInvalid, err)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return l, nil
}

// Logger returns a logger writing to w at the configured level and
// format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	l, err := c.level()
	if err != nil {
		l = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: l}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Apply installs the key table options and a logger writing to w into
// package dict.
func (c *Config) Apply(w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := dict.SetTableOptions(c.TableOptions()); err != nil {
		return err
	}
	dict.SetLogger(c.Logger(w))
	return nil
}

func (c *Config) String() string {
	d, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(d)
}
