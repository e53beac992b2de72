// Package config loads settings from a YAML file, NOTEHASH_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/conorfennell/notehash/internal/validate"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix marks environment variables read into the config. NOTEHASH_DB_PATH
// sets db.path.
const EnvPrefix = "NOTEHASH_"

type Config struct {
	DB   DBConfig   `koanf:"db"`
	Log  LogConfig  `koanf:"log"`
	HTTP HTTPConfig `koanf:"http"`
	Quiz QuizConfig `koanf:"quiz"`
	Auth AuthConfig `koanf:"auth"`
}

type DBConfig struct {
	Path string `koanf:"path" validate:"required"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

type HTTPConfig struct {
	Addr    string        `koanf:"addr" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type QuizConfig struct {
	// Source is empty for the built-in questions, a directory, or a git URL.
	Source   string `koanf:"source"`
	Pattern  string `koanf:"pattern" validate:"required"`
	Checkout string `koanf:"checkout" validate:"required"`
}

type AuthConfig struct {
	Enabled bool   `koanf:"enabled"`
	User    string `koanf:"user" validate:"required_if=Enabled true"`
	Hash    string `koanf:"hash"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":            "db.path",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"http-addr":     "http.addr",
	"http-timeout":  "http.timeout",
	"quiz-source":   "quiz.source",
	"quiz-pattern":  "quiz.pattern",
	"quiz-checkout": "quiz.checkout",
	"auth":          "auth.enabled",
	"auth-user":     "auth.user",
	"auth-hash":     "auth.hash",
}

// RegisterFlags defines every config flag, with its default, on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file")
	fs.String("db", "notes.db", "Path to the SQLite database file")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.String("log-format", "console", "Log format: console or json")
	fs.String("http-addr", "127.0.0.1:8080", "Address the HTTP server listens on")
	fs.Duration("http-timeout", 15*time.Second, "Read and write timeout for HTTP requests")
	fs.String("quiz-source", "", "Question bank directory or git URL (built-in questions when empty)")
	fs.String("quiz-pattern", "**/*.md", "Glob selecting question files inside the bank")
	fs.String("quiz-checkout", "repos", "Directory git question banks are cloned into")
	fs.Bool("auth", true, "Require HTTP basic auth on the API")
	fs.String("auth-user", "user", "Username accepted by the login gate")
	fs.String("auth-hash", "", "bcrypt hash of the login password (placeholder password when empty)")
}

// Load reads the config file named by --config (if any), then the
// environment, then fs. Flags left at their default only fill keys that no
// earlier source set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envToKey := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	flagToKey := func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validate.Struct(validate.New(), cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
