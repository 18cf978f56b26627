// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diffeo/go-roadmap/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	if assert.NoError(t, err) {
		assert.Equal(t, DefaultConfig(), cfg)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
http: 127.0.0.1:9000
backend: postgres://localhost/roadmap
log_level: debug
log_requests: true
metrics_interval: 5s
`))
	if assert.NoError(t, err) {
		assert.Equal(t, Config{
			HTTP:            "127.0.0.1:9000",
			Backend:         backend.Backend{Implementation: "postgres", Address: "//localhost/roadmap"},
			LogLevel:        "debug",
			LogRequests:     true,
			MetricsInterval: 5 * time.Second,
		}, cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, text := range []string{
		"backend: redis",
		"metrics_interval: soon",
		"colour: blue",
		"metrics_interval: 0s",
		"metrics_interval: -5s",
		"http: [1, 2",
	} {
		_, err := ParseConfig([]byte(text))
		assert.Error(t, err, text)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "roadmapd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "roadmapd.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte("http: \":9999\"\n"), 0644))

	cfg, err := LoadConfigFile(filename)
	if assert.NoError(t, err) {
		assert.Equal(t, ":9999", cfg.HTTP)
		assert.Equal(t, "memory", cfg.Backend.String())
	}

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := DefaultConfig()
	flags := flag.NewFlagSet("roadmapd", flag.ContinueOnError)
	configFile := cfg.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{
		"-config", "roadmapd.yaml",
		"-backend", "postgres:host=db",
		"-log-requests",
	}))
	assert.Equal(t, "roadmapd.yaml", *configFile)

	fileCfg, err := ParseConfig([]byte(`
http: ":9000"
backend: memory
log_level: warn
`))
	require.NoError(t, err)

	merged := cfg.Override(fileCfg, flags)
	assert.Equal(t, Config{
		HTTP:            ":9000",
		Backend:         backend.Backend{Implementation: "postgres", Address: "host=db"},
		LogLevel:        "warn",
		LogRequests:     true,
		MetricsInterval: 30 * time.Second,
	}, merged)
}

func TestValidateMetricsInterval(t *testing.T) {
	_, err := ParseConfig([]byte("metrics_interval: 0s\n"))
	assert.Equal(t, ErrMetricsInterval, err)

	cfg := DefaultConfig()
	flags := flag.NewFlagSet("roadmapd", flag.ContinueOnError)
	cfg.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"-metrics-interval", "0"}))
	assert.Equal(t, ErrMetricsInterval, cfg.Validate())

	assert.NoError(t, DefaultConfig().Validate())
}
