package cmdflags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config controls the behavior of a Registry.
type Config struct {
	// EmitDebugMessages enables diagnostics about unknown or malformed
	// options on the registry output.
	EmitDebugMessages bool `toml:"emit_debug_messages" yaml:"emit_debug_messages"`
}

// DefaultConfig returns the configuration of new registries.
func DefaultConfig() Config {
	return Config{EmitDebugMessages: true}
}

// GetConfig copies the current configuration into cfg.
func (r *Registry) GetConfig(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}
	*cfg = r.cfg
	return nil
}

// SetConfig replaces the current configuration with *cfg.
func (r *Registry) SetConfig(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}
	r.cfg = *cfg
	return nil
}

// GetConfig copies the configuration of CommandLine into cfg.
func GetConfig(cfg *Config) error { return CommandLine.GetConfig(cfg) }

// SetConfig sets the configuration of CommandLine.
func SetConfig(cfg *Config) error { return CommandLine.SetConfig(cfg) }

// -----

// Format is the syntax of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned by DecodeConfig for an invalid Format.
var ErrUnknownFormat = errors.New("cmdflags: unknown config format")

// LoadConfig reads a configuration file. Files ending in .yaml or .yml are
// read as YAML, anything else as TOML. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cmdflags: reading config: %w", err)
	}

	cfg, err := DecodeConfig(data, detectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// DecodeConfig parses configuration content in the given format on top of
// DefaultConfig.
func DecodeConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("cmdflags: TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("cmdflags: YAML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	return cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
