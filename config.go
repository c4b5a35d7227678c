package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config carries the shell's runtime settings. The core library package
// only ever sees the parsed day duration.
type Config struct {
	DayDuration time.Duration
	SeedPath    string
	Verbose     bool
}

const envPrefix = "LIBRARIUM_"

// loadConfig layers configuration sources, lowest to highest priority:
// built-in defaults, an optional .env file, LIBRARIUM_* environment
// variables, then command-line flags.
func loadConfig(envFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"day_duration": "24h",
		"seed":         "",
		"verbose":      false,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// A ./.env is optional.
		_ = godotenv.Load()
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	day, err := time.ParseDuration(k.String("day_duration"))
	if err != nil {
		return Config{}, fmt.Errorf("parse day_duration %q: %w", k.String("day_duration"), err)
	}
	if day <= 0 {
		return Config{}, fmt.Errorf("day_duration must be positive, got %v", day)
	}

	return Config{
		DayDuration: day,
		SeedPath:    k.String("seed"),
		Verbose:     k.Bool("verbose"),
	}, nil
}
