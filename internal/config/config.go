package config

import (
	"os"
	"strings"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultListenAddress = ":8000"
	DefaultInterval      = 2
	DefaultDataDir       = "data"
	DefaultLogLevel      = "info"

	envPrefix  = "ROBODATA"
	envConfig  = "ROBODATA_CONFIG"
	configName = "robodata"
)

// Config holds the runtime configuration for the service.
// HistoryLimit of 0 keeps the full history in memory and on disk.
type Config struct {
	ListenAddress string `mapstructure:"listen_address"`
	Interval      int    `mapstructure:"interval"`
	DataDir       string `mapstructure:"data_dir"`
	HistoryLimit  int    `mapstructure:"history_limit"`
	LogLevel      string `mapstructure:"log_level"`
	Telemetry     bool   `mapstructure:"telemetry"`
	TelemetryDB   string `mapstructure:"database"`
}

func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("listen_address", DefaultListenAddress)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("history_limit", 0)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", "data/metrics.db")

	flags := pflag.NewFlagSet("robodata", pflag.ContinueOnError)
	// Tolerate foreign flags (e.g. the test runner's -test.* flags)
	flags.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	flags.String("listen-address", DefaultListenAddress, "Address the HTTP server binds to")
	flags.Int("interval", DefaultInterval, "Seconds between update cycles")
	flags.String("data-dir", DefaultDataDir, "Directory holding the persisted JSON documents")
	flags.Int("history-limit", 0, "Maximum history records to retain (0 = unlimited)")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("telemetry", false, "Enable cycle telemetry collection")
	flags.String("database", "data/metrics.db", "Path to the telemetry database")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Config file is optional; an explicit path via ROBODATA_CONFIG wins
	if path := os.Getenv(envConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/robodata")
	}
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Flags set on the command line override file and env values
	flags.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.ListenAddress == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "listen_address must not be empty")
	}
	if c.Interval < 1 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.DataDir == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "data_dir must not be empty")
	}
	if c.HistoryLimit < 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, c.HistoryLimit)
	}
	if !isValidLogLevel(c.LogLevel) {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Telemetry && c.TelemetryDB == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "database required when telemetry is enabled")
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warning", "warn", "error":
		return true
	default:
		return false
	}
}
