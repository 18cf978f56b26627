// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package roadmapd runs the roadmap REST service.  It serves the
// milestone and release API under /api, and Prometheus metrics under
// /metrics.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := DefaultConfig()
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configFile := cfg.RegisterFlags(flags)
	flags.Parse(os.Args[1:])

	if *configFile != "" {
		fileCfg, err := LoadConfigFile(*configFile)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err":  err,
				"file": *configFile,
			}).Fatal("Could not load YAML configuration")
			return
		}
		cfg = cfg.Override(fileCfg, flags)
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"err":              err,
			"metrics_interval": cfg.MetricsInterval,
		}).Fatal("Invalid configuration")
		return
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":       err,
			"log_level": cfg.LogLevel,
		}).Fatal("Invalid log level")
		return
	}
	logrus.SetLevel(level)

	rm, err := cfg.Backend.Roadmap()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": cfg.Backend.String(),
		}).Fatal("Could not create roadmap backend")
		return
	}

	var reqLogger *logrus.Logger
	if cfg.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	go observe(context.Background(), clock.New(), rm, cfg.MetricsInterval)

	logrus.WithFields(logrus.Fields{
		"http":    cfg.HTTP,
		"backend": cfg.Backend.String(),
	}).Info("Starting roadmap service")
	server := &http.Server{
		Addr:    cfg.HTTP,
		Handler: NewHandler(rm, reqLogger),
	}
	err = server.ListenAndServe()
	logrus.WithFields(logrus.Fields{
		"err": err,
	}).Fatal("HTTP service stopped")
}
