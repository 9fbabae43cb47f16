package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/host"
	"github.com/goliatone/go-paramform/pkg/layout"
)

// EnvPrefix prefixes every environment override, e.g. PARAMFORM_SESSION_ON_INIT.
const EnvPrefix = "PARAMFORM"

// Config holds the CLI configuration.
type Config struct {
	Format  string        `mapstructure:"format"`
	Schema  SchemaConfig  `mapstructure:"schema"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// SchemaConfig selects where the parameter schema comes from.
type SchemaConfig struct {
	File      string `mapstructure:"file"`
	OpenAPI   string `mapstructure:"openapi"`
	Component string `mapstructure:"component"`
}

// SessionConfig mirrors the interaction mode of a binding session.
type SessionConfig struct {
	NextSteps     string `mapstructure:"next_steps"`
	ConfirmButton bool   `mapstructure:"confirm_button"`
	OnInit        bool   `mapstructure:"on_init"`
	Tooltips      bool   `mapstructure:"tooltips"`
	LabelWidth    string `mapstructure:"label_width"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"format":      "format",
	"schema":      "schema.file",
	"openapi":     "schema.openapi",
	"component":   "schema.component",
	"next":        "session.next_steps",
	"button":      "session.confirm_button",
	"on-init":     "session.on_init",
	"tooltips":    "session.tooltips",
	"label-width": "session.label_width",
	"debug":       "log.debug",
}

// Option customises Load.
type Option func(*loader)

type loader struct {
	file  string
	flags *pflag.FlagSet
}

// WithFile reads path instead of the default location. A missing explicit
// file is an error.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = path
	}
}

// WithFlags lets changed flags override file and environment values.
func WithFlags(flags *pflag.FlagSet) Option {
	return func(l *loader) {
		l.flags = flags
	}
}

// Load resolves defaults, the config file, PARAMFORM_ environment variables
// and flags, in increasing priority.
func Load(options ...Option) (Config, error) {
	l := &loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}

	v := viper.New()
	v.SetDefault("format", "tui")
	v.SetDefault("schema.file", "")
	v.SetDefault("schema.openapi", "")
	v.SetDefault("schema.component", "")
	v.SetDefault("session.next_steps", "")
	v.SetDefault("session.confirm_button", false)
	v.SetDefault("session.on_init", false)
	v.SetDefault("session.tooltips", true)
	v.SetDefault("session.label_width", "")
	v.SetDefault("log.debug", false)

	v.SetConfigType("yaml")
	path := l.file
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "paramform"))
		v.AddConfigPath(".")
		v.SetConfigName("paramform")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	if l.flags != nil {
		for name, key := range flagKeys {
			flag := l.flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the values that are parsed later.
func (c Config) Validate() error {
	switch c.Format {
	case "tui", "text", "html":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if _, err := host.ParseCount(c.Session.NextSteps); err != nil {
		return fmt.Errorf("config: session.next_steps: %w", err)
	}
	return nil
}

// SessionOptions converts the session section into binding options.
func (c Config) SessionOptions() ([]binding.Option, error) {
	steps, err := host.ParseCount(c.Session.NextSteps)
	if err != nil {
		return nil, fmt.Errorf("config: session.next_steps: %w", err)
	}
	return []binding.Option{
		binding.WithNextSteps(steps),
		binding.WithConfirmButton(c.Session.ConfirmButton),
		binding.WithOnInit(c.Session.OnInit),
		binding.WithTooltips(c.Session.Tooltips),
		binding.WithLabelWidth(c.LabelWidth()),
	}, nil
}

// LabelWidth returns a fixed width when one is configured, otherwise the
// estimate from the longest label.
func (c Config) LabelWidth() layout.LabelWidth {
	width := strings.TrimSpace(c.Session.LabelWidth)
	if width == "" || strings.EqualFold(width, "auto") {
		return layout.Estimate
	}
	return layout.Fixed(width)
}
