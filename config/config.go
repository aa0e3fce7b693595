package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2019/orbit"
	"github.com/katalvlaran/aoc2019/puzzle"
)

var (
	// ErrRead indicates the config file could not be read.
	ErrRead = errors.New("config: read failed")

	// ErrDecode indicates the config file is not valid YAML for Config.
	ErrDecode = errors.New("config: decode failed")

	// ErrInvalid indicates a decoded Config failed validation.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the full set of settings.
type Config struct {
	// Inputs overrides a solution's default input URL, keyed by solution name.
	Inputs map[string]string `yaml:"inputs" validate:"omitempty,dive,keys,required,endkeys,required"`
	Orbit  Orbit             `yaml:"orbit"`
	Log    Log               `yaml:"log"`
}

// Orbit names the objects the orbit solutions search for.
type Orbit struct {
	Root string `yaml:"root" validate:"required,excludes=)"`
	From string `yaml:"from" validate:"required,excludes=)"`
	To   string `yaml:"to" validate:"required,excludes=)"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Orbit: Orbit{Root: orbit.DefaultRoot, From: orbit.DefaultFrom, To: orbit.DefaultTo},
		Log:   Log{Level: "info", Format: "text"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the file at url through fs (afs.New() when nil) and parses it.
func Load(ctx context.Context, fs afs.Service, url string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, url, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	return cfg, nil
}

// Input returns the URL configured for the named solution, or "" when the
// solution's own default should be used.
func (c *Config) Input(name string) string {
	return c.Inputs[name]
}

// Params converts the orbit settings for puzzle.Runner.
func (c *Config) Params() puzzle.Params {
	return puzzle.Params{Root: c.Orbit.Root, From: c.Orbit.From, To: c.Orbit.To}
}

// SlogLevel maps Log.Level onto slog; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the slog.Logger described by Log, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
