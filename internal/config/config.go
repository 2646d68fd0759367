package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/multierr"
)

const envPrefix = "PROBE_"

type Config struct {
	Workspace string `koanf:"workspace" json:"workspace,omitempty"`   // sandbox workspace root, e.g. "/workspace"
	InputFile string `koanf:"input_file" json:"input_file,omitempty"` // file that must NOT exist in a compile-only workspace
	LogDir    string `koanf:"log_dir" json:"log_dir,omitempty"`       // empty disables the diagnostic log
}

func DefaultConfig() Config {
	return Config{
		Workspace: "/workspace",
		InputFile: "input.txt",
	}
}

// InputPath is the absolute path the probe opens.
func (c Config) InputPath() string {
	return filepath.Join(c.Workspace, c.InputFile)
}

func (c Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Workspace) == "" {
		err = multierr.Append(err, errors.New("workspace must not be empty"))
	} else if !filepath.IsAbs(c.Workspace) {
		err = multierr.Append(err, fmt.Errorf("workspace must be an absolute path, got %q", c.Workspace))
	}
	if strings.TrimSpace(c.InputFile) == "" {
		err = multierr.Append(err, errors.New("input_file must not be empty"))
	} else if filepath.IsAbs(c.InputFile) {
		err = multierr.Append(err, fmt.Errorf("input_file must be relative to the workspace, got %q", c.InputFile))
	}
	return err
}

// FromEnv layers PROBE_* environment variables over the defaults, so an
// unconfigured probe keeps checking /workspace/input.txt.
func FromEnv() (Config, error) {
	k := koanf.New(".")
	if err := loadStruct(k, DefaultConfig()); err != nil {
		return Config{}, err
	}

	// Blank variables are skipped rather than overriding a default with "".
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadStruct(k *koanf.Koanf, cfg Config) error {
	// Going through JSON keeps omitempty fields from clobbering set values.
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to json: %w", err)
	}
	if err := k.Load(rawbytes.Provider(raw), kjson.Parser()); err != nil {
		return fmt.Errorf("failed to load config from json bytes: %w", err)
	}
	return nil
}
