// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"errors"
	"flag"
	"io/ioutil"
	"reflect"
	"time"

	"github.com/diffeo/go-roadmap/backend"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config holds the daemon settings.  Each field may come from a
// command-line flag or from the YAML configuration file; flags that
// are explicitly given on the command line win.
type Config struct {
	// HTTP is the [ip]:port for the HTTP REST interface.
	HTTP string `mapstructure:"http"`

	// Backend is the impl[:address] of the storage backend.
	Backend backend.Backend `mapstructure:"backend"`

	// LogLevel is a logrus level name, such as "info".
	LogLevel string `mapstructure:"log_level"`

	// LogRequests enables a log entry for every HTTP request.
	LogRequests bool `mapstructure:"log_requests"`

	// MetricsInterval is how often resource counts are refreshed.
	MetricsInterval time.Duration `mapstructure:"metrics_interval"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		HTTP:            ":8080",
		Backend:         backend.Backend{Implementation: "memory"},
		LogLevel:        "info",
		MetricsInterval: 30 * time.Second,
	}
}

// flagNames maps command-line flag names to Config keys.
var flagNames = map[string]string{
	"http":             "http",
	"backend":          "backend",
	"log-level":        "log_level",
	"log-requests":     "log_requests",
	"metrics-interval": "metrics_interval",
}

// RegisterFlags adds a flag for every field of c to flags, writing
// into c.  It also adds a -config flag and returns its value.
func (c *Config) RegisterFlags(flags *flag.FlagSet) *string {
	flags.StringVar(&c.HTTP, "http", c.HTTP,
		"[ip]:port for HTTP REST interface")
	flags.Var(&c.Backend, "backend",
		"impl[:address] of the storage backend")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel,
		"minimum level of log messages")
	flags.BoolVar(&c.LogRequests, "log-requests", c.LogRequests,
		"log all requests")
	flags.DurationVar(&c.MetricsInterval, "metrics-interval", c.MetricsInterval,
		"refresh interval for resource count metrics")
	return flags.String("config", "", "global configuration YAML file")
}

// Override returns a copy of file, with every setting that was
// explicitly set in flags taken from c instead.
func (c Config) Override(file Config, flags *flag.FlagSet) Config {
	result := file
	flags.Visit(func(f *flag.Flag) {
		switch flagNames[f.Name] {
		case "http":
			result.HTTP = c.HTTP
		case "backend":
			result.Backend = c.Backend
		case "log_level":
			result.LogLevel = c.LogLevel
		case "log_requests":
			result.LogRequests = c.LogRequests
		case "metrics_interval":
			result.MetricsInterval = c.MetricsInterval
		}
	})
	return result
}

// LoadConfigFile reads a YAML configuration file.  Settings missing
// from the file keep their DefaultConfig values.
func LoadConfigFile(filename string) (Config, error) {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(bytes)
}

// ParseConfig decodes YAML configuration text.
func ParseConfig(bytes []byte) (Config, error) {
	var raw map[string]interface{}
	err := yaml.Unmarshal(bytes, &raw)
	if err != nil {
		return Config{}, err
	}

	result := DefaultConfig()
	config := mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToBackendHookFunc,
		),
		ErrorUnused: true,
		Result:      &result,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err != nil {
		return Config{}, err
	}
	err = decoder.Decode(raw)
	if err == nil {
		err = result.Validate()
	}
	if err != nil {
		return Config{}, err
	}
	return result, nil
}

// ErrMetricsInterval is returned from Validate() if the metrics
// refresh interval is zero or negative.
var ErrMetricsInterval = errors.New("metrics interval must be positive")

// Validate checks settings that the flag and YAML decoders accept
// but the daemon cannot run with.
func (c Config) Validate() error {
	if c.MetricsInterval <= 0 {
		return ErrMetricsInterval
	}
	return nil
}

// stringToBackendHookFunc is a mapstructure decode hook that parses
// an "impl:address" string into a backend.Backend.
func stringToBackendHookFunc(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(backend.Backend{}) {
		return data, nil
	}
	var b backend.Backend
	err := b.Set(data.(string))
	return b, err
}
