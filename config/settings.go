package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// SettingsPathEnv points at a TOML settings file.
	SettingsPathEnv = "MINIGREP_CONFIG"
	// SettingsContentEnv holds a TOML settings document inline.
	SettingsContentEnv = "MINIGREP_CONFIG_TOML"
)

// Settings are optional defaults read from TOML. None of them are required.
type Settings struct {
	IgnoreCase bool   `koanf:"ignore_case"`
	LogLevel   string `koanf:"log_level"`
	MinVersion string `koanf:"min_version"`

	// Origin records where the settings were read from, empty when no
	// settings source was found.
	Origin string `koanf:"-"`
}

// ParseSettings decodes a TOML settings document. Unknown keys are an error.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}

	err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &s,
		},
	})
	if err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// LoadSettingsFile reads and decodes the settings file at path.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Origin = path
	return s, nil
}

// ResolveSettings loads settings in order of precedence:
//  1. path (the --config flag)
//  2. env var MINIGREP_CONFIG with a file path
//  3. env var MINIGREP_CONFIG_TOML with the file content
//
// When none of them is set the zero Settings are returned.
func ResolveSettings(path string, lookup func(string) (string, bool)) (Settings, error) {
	if path != "" {
		return LoadSettingsFile(path)
	}
	if envPath, ok := lookup(SettingsPathEnv); ok && envPath != "" {
		return LoadSettingsFile(envPath)
	}
	if content, ok := lookup(SettingsContentEnv); ok && content != "" {
		s, err := ParseSettings([]byte(content))
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", SettingsContentEnv, err)
		}
		s.Origin = SettingsContentEnv
		return s, nil
	}
	return Settings{}, nil
}
