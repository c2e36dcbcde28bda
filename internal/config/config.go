// Package config loads the bootstrap configuration.
//
// Values are resolved in this order, later sources overriding earlier ones:
//   - built-in defaults
//   - a YAML file, when a path is given
//   - APPBOOT_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/appboot/internal/logging"
	"github.com/sghaida/appboot/platform"
)

// Config is the bootstrap configuration for cmd/appboot.
type Config struct {
	// App is the registry name of the entry point to start.
	App string `yaml:"app" env:"APPBOOT_APP"`

	// Platform overrides OS detection when non-empty (windows, linux, ...).
	Platform string `yaml:"platform" env:"APPBOOT_PLATFORM"`

	Log       LogConfig       `yaml:"log" envPrefix:"APPBOOT_LOG_"`
	Win32     Win32Config     `yaml:"win32" envPrefix:"APPBOOT_WIN32_"`
	X11       X11Config       `yaml:"x11" envPrefix:"APPBOOT_X11_"`
	Rendering RenderingConfig `yaml:"rendering" envPrefix:"APPBOOT_RENDERING_"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// Win32Config lists Win32 rendering modes in preference order.
type Win32Config struct {
	RenderingModes []string `yaml:"rendering_modes" env:"RENDERING_MODES" envSeparator:","`
}

// X11Config lists X11 rendering modes in preference order.
type X11Config struct {
	RenderingModes []string `yaml:"rendering_modes" env:"RENDERING_MODES" envSeparator:","`
}

// RenderingConfig toggles the Skia rendering subsystem.
type RenderingConfig struct {
	Skia                    bool  `yaml:"skia" env:"SKIA"`
	MaxGPUResourceSizeBytes int64 `yaml:"max_gpu_resource_size_bytes" env:"MAX_GPU_RESOURCE_SIZE_BYTES"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		App: "demo",
		Log: LogConfig{Level: "info", Format: logging.FormatText},
	}
	for _, m := range platform.DefaultWin32Options().RenderingModes {
		cfg.Win32.RenderingModes = append(cfg.Win32.RenderingModes, string(m))
	}
	for _, m := range platform.DefaultX11Options().RenderingModes {
		cfg.X11.RenderingModes = append(cfg.X11.RenderingModes, string(m))
	}
	return cfg
}

// Load resolves the configuration from defaults, the optional YAML file at
// path and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks log settings and rendering mode names.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	// Matches logging.New, which accepts the format in any case.
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if _, err := c.PlatformOptions(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// PlatformOptions converts the rendering settings into platform.Options.
func (c Config) PlatformOptions() (platform.Options, error) {
	opts := platform.Options{}
	for _, s := range c.Win32.RenderingModes {
		m, err := platform.ParseWin32RenderingMode(s)
		if err != nil {
			return platform.Options{}, err
		}
		opts.Win32.RenderingModes = append(opts.Win32.RenderingModes, m)
	}
	for _, s := range c.X11.RenderingModes {
		m, err := platform.ParseX11RenderingMode(s)
		if err != nil {
			return platform.Options{}, err
		}
		opts.X11.RenderingModes = append(opts.X11.RenderingModes, m)
	}
	if c.Rendering.Skia {
		opts.Skia = &platform.SkiaOptions{MaxGPUResourceSizeBytes: c.Rendering.MaxGPUResourceSizeBytes}
	}
	return opts, nil
}
