// Package config resolves all environment and file configuration once at the
// boundary. The pipeline receives an immutable Config and never reads
// environment state itself.
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/martamakes/c-formatter-42-ext/internal/formatter"
)

// ConfigFileName is the optional per-project configuration file, looked up in
// the working directory unless ConfigPathEnvVar points elsewhere.
const ConfigFileName = ".c42fmt.yml"

const (
	ConfigPathEnvVar = "C42FMT_CONFIG"
	DebugEnvVar      = "C42FMT_DEBUG"
	LogFileEnvVar    = "C42FMT_LOG_FILE"
	UserEnvVar       = "USER"
)

// DefaultAuthor is used when neither flags, config file nor USER provide one.
const DefaultAuthor = "unknown"

// fileConfig mirrors the .c42fmt.yml document.
type fileConfig struct {
	Author                  string `yaml:"author"`
	Email                   string `yaml:"email"`
	SkipHeader              bool   `yaml:"skipHeader"`
	FormatterPath           string `yaml:"formatterPath"`
	FormatterTimeoutSeconds int    `yaml:"formatterTimeoutSeconds"`
}

// Config is the fully resolved configuration. Flag overrides are applied by
// the command layer on top of these values.
type Config struct {
	Author           string
	Email            string
	SkipHeader       bool
	FormatterPath    string
	FormatterTimeout time.Duration
	Debug            bool
	LogFile          string
}

// Load resolves configuration in one pass: environment first, then the
// optional config file on top. A missing default config file is not an error;
// a missing explicitly-named one is.
func Load(env EnvProvider) (*Config, error) {
	cfg := &Config{
		Author:           env.Get(UserEnvVar),
		FormatterPath:    env.Get(formatter.PathEnvVar),
		FormatterTimeout: formatter.DefaultTimeout,
		Debug:            isTruthy(env.Get(DebugEnvVar)),
		LogFile:          env.Get(LogFileEnvVar),
	}
	if cfg.Author == "" {
		cfg.Author = DefaultAuthor
	}

	path := env.Get(ConfigPathEnvVar)
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if uErr := yaml.Unmarshal(data, &fc); uErr != nil {
			return nil, &InvalidYAMLError{Path: path, Wrapped: uErr}
		}
		if fc.FormatterTimeoutSeconds < 0 {
			return nil, &InvalidTimeoutError{Path: path, Value: fc.FormatterTimeoutSeconds}
		}
		if fc.Author != "" {
			cfg.Author = fc.Author
		}
		if fc.Email != "" {
			cfg.Email = fc.Email
		}
		if fc.SkipHeader {
			cfg.SkipHeader = true
		}
		if fc.FormatterPath != "" {
			cfg.FormatterPath = fc.FormatterPath
		}
		if fc.FormatterTimeoutSeconds > 0 {
			cfg.FormatterTimeout = time.Duration(fc.FormatterTimeoutSeconds) * time.Second
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, &MissingConfigError{Path: path}
		}
	default:
		return nil, err
	}

	return cfg, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}
