package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/spotify-preview/internal/constants"
	"github.com/oshokin/spotify-preview/internal/logger"
	"github.com/oshokin/spotify-preview/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout for embed page requests (e.g., "30s", "1m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxResponseSize limits how much of the embed page body is read (e.g., "2MB").
	MaxResponseSize string `mapstructure:"max_response_size"`
	// UserAgent overrides the User-Agent header sent to the embed endpoint.
	// When empty, the transport's default browser-like value is used.
	UserAgent string `mapstructure:"user_agent"`
	// RequirePreview makes a track without a preview an error instead of an empty result.
	RequirePreview bool `mapstructure:"require_preview"`
	// SpotifyBaseURL is the base URL for the Spotify embed endpoint (set automatically).
	SpotifyBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxResponseSize is the parsed response size limit in bytes.
	ParsedMaxResponseSize int64
}

const (
	// SpotifyBaseURL is the base URL for the Spotify web player.
	SpotifyBaseURL = "https://open.spotify.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".spotify-preview.yaml"

	// DefaultLogLevel is the logging level used when the configuration file is absent.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the embed request timeout used when the configuration file is absent.
	DefaultRequestTimeout = "30s"

	// DefaultMaxResponseSize is the embed page read limit used when the configuration file is absent.
	DefaultMaxResponseSize = "2MB"

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped HTTP payloads in logs.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout setting is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidMaxResponseSize indicates that the response size limit is invalid.
	ErrInvalidMaxResponseSize = errors.New("max_response_size must be positive")
	// ErrConfigFileExists indicates that a configuration file is already present.
	ErrConfigFileExists = errors.New("config file already exists")
)

// LoadConfig loads configuration settings from a YAML file.
// When no filename is given, the default file is used if present
// and built-in defaults apply otherwise.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultFilename := configFilename == ""
	if isDefaultFilename {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default file is fine, the defaults cover it.
		// An explicitly requested file must exist.
		if !isDefaultFilename || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.SpotifyBaseURL = SpotifyBaseURL

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	parsedRequestTimeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if parsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedRequestTimeout = parsedRequestTimeout

	parsedMaxResponseSize, err := humanize.ParseBytes(strings.TrimSpace(cfg.MaxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to parse max response size: %w", err)
	}

	if parsedMaxResponseSize == 0 {
		return ErrInvalidMaxResponseSize
	}

	// io.LimitReader accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedMaxResponseSize = utils.SafeUint64ToInt64(parsedMaxResponseSize)

	cfg.UserAgent = strings.TrimSpace(cfg.UserAgent)

	return nil
}

// WriteDefaultConfig creates a starter configuration file with the built-in defaults.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(configFilename string) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	if _, err := os.Stat(configFilename); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, configFilename)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaults := map[string]any{
		"log_level":         DefaultLogLevel,
		"request_timeout":   DefaultRequestTimeout,
		"max_response_size": DefaultMaxResponseSize,
		"user_agent":        "",
		"require_preview":   false,
	}

	content, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(configFilename); dir != "." {
		if err = os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err = os.WriteFile(configFilename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setDefaults registers built-in defaults so the tool works without a config file.
func setDefaults() {
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("max_response_size", DefaultMaxResponseSize)
	viper.SetDefault("user_agent", "")
	viper.SetDefault("require_preview", false)
}
