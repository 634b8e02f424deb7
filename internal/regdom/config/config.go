package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// BloomFPRate is the target false-positive rate for the top-label
	// prefilter.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"gt=0,lt=1"`

	// CacheSize is the capacity of the lookup result cache.
	CacheSize uint `koanf:"cache_size" validate:"required,gte=1"`

	// DisableCache disables lookup result caching when set to true.
	DisableCache bool `koanf:"disable_cache"`

	// DropUnknown selects strict resolution: hostnames whose top label is
	// absent from the rule set yield no match instead of a best-effort
	// guess.
	DropUnknown bool `koanf:"drop_unknown"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// RulesDB is an optional path to a bbolt rule-set snapshot database.
	// When set and the database holds a snapshot, it is preferred over the
	// embedded rule text.
	RulesDB string `koanf:"rules_db"`
}

// DEFAULT_APP_CONFIG defines the default application configuration for the
// regdom lookup tool: production logging at info level, a modest result
// cache, lenient resolution, and no snapshot database.
var DEFAULT_APP_CONFIG = AppConfig{
	BloomFPRate:  0.01,
	CacheSize:    1024,
	DisableCache: false,
	DropUnknown:  false,
	Env:          "prod",
	LogLevel:     "info",
	RulesDB:      "",
}

// envLoader loads environment variables with the prefix "REGDOM_",
// lowercasing keys and trimming values. Split out so tests can replace it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "REGDOM_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "REGDOM_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG via the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
