// Package config loads and validates the host configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/swiprint/application/schema"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Defaults.
const (
	DefaultModuleName   = "armsim"
	DefaultMaxStringLen = 4096
	DefaultMaxOutput    = 1 << 20
	MaxStringLenLimit   = 1 << 20
)

// Config is the complete host configuration.
type Config struct {
	Host    HostConfig    `yaml:"host" json:"host"`
	Console ConsoleConfig `yaml:"console" json:"console"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// HostConfig configures the guest runtime.
type HostConfig struct {
	// ModuleName is the import module guests take their calls from.
	ModuleName string `yaml:"module_name" json:"module_name" validate:"required,max=64" jsonschema:"default=armsim"`

	// MaxStringLen bounds every guest string a host call reads.
	MaxStringLen uint32 `yaml:"max_string_len" json:"max_string_len" validate:"min=1,max=1048576" jsonschema:"minimum=1,maximum=1048576,default=4096"`

	// WASI exposes wasi_snapshot_preview1 so toolchain-built guests can run.
	WASI bool `yaml:"wasi" json:"wasi" jsonschema:"default=true"`
}

// ConsoleConfig configures console capture.
type ConsoleConfig struct {
	// MaxOutput caps captured console bytes. Zero means unbounded.
	MaxOutput int `yaml:"max_output" json:"max_output" validate:"min=0" jsonschema:"minimum=0,default=1048576"`
}

// LogConfig configures host logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json console" jsonschema:"enum=text,enum=json,enum=console,default=text"`
}

// SlogLevel returns the slog level for Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
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

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Host: HostConfig{
			ModuleName:   DefaultModuleName,
			MaxStringLen: DefaultMaxStringLen,
			WASI:         true,
		},
		Console: ConsoleConfig{
			MaxOutput: DefaultMaxOutput,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Parse reads YAML on top of the defaults and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fieldPath(fe.Namespace()), fe.Tag()))
			}
			return fmt.Errorf("config validation failed: %s: %w", strings.Join(msgs, "; "), err)
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace, leaving
// the YAML path ("Config.host.max_string_len" becomes "host.max_string_len").
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// Schema returns the JSON Schema of the configuration file.
func Schema() ([]byte, error) {
	return schema.GenerateSchema(&Config{})
}
