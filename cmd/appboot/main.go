package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/sghaida/appboot/boot"
	"github.com/sghaida/appboot/internal/config"
	"github.com/sghaida/appboot/internal/demo"
	"github.com/sghaida/appboot/internal/logging"
	"github.com/sghaida/appboot/platform"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:], platform.Detect()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// entryPoints lists the applications compiled into the binary.
func entryPoints(out io.Writer) *boot.Registry {
	return boot.NewRegistry().
		Provide("demo", boot.EntryPoint{
			Build: func() *boot.Builder { return demo.BuildApp(out) },
			Main:  demo.Main,
		})
}

// run holds the whole program so tests can drive it with their own
// writers and OS identity.
func run(outW, errW io.Writer, args []string, host platform.OS) error {
	var (
		configPath string
		platformID string
		appName    string
		logLevel   string
		logFormat  string
	)

	flagSet := pflag.NewFlagSet("appboot", pflag.ContinueOnError)
	flagSet.SetOutput(errW)
	flagSet.StringVar(&configPath, "config", os.Getenv("APPBOOT_CONFIG"), "path to YAML config file")
	flagSet.StringVar(&platformID, "platform", "", "override OS detection (windows, linux)")
	flagSet.StringVar(&appName, "app", "", "registered application to start")
	flagSet.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flagSet.StringVar(&logFormat, "log-format", "", "log format (text, json)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// Flags win over file and environment.
	if platformID != "" {
		cfg.Platform = platformID
	}
	if appName != "" {
		cfg.App = appName
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, errW)
	if err != nil {
		return err
	}
	opts, err := cfg.PlatformOptions()
	if err != nil {
		return err
	}

	target := host
	if cfg.Platform != "" {
		target = platform.ParseOS(cfg.Platform)
	}

	registry := entryPoints(outW)
	entry, ok, err := registry.Resolve(cfg.App)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown application %q (available: %v)", cfg.App, registry.Names())
	}

	b := entry.Build().WithLogger(logger.With(slog.String("app", cfg.App)))
	platform.Dispatch(b, target, opts)

	if err := b.Start(entry.Main, flagSet.Args()); err != nil {
		return fmt.Errorf("bootstrap %s: %w", cfg.App, err)
	}
	return nil
}
