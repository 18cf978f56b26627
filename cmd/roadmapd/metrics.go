// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diffeo",
			Subsystem: "roadmap",
			Name:      "http_requests_total",
			Help:      "HTTP requests to the REST API",
		},
		[]string{"method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "diffeo",
			Subsystem: "roadmap",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests to the REST API",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	resourceCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "diffeo",
			Subsystem: "roadmap",
			Name:      "resources",
			Help:      "Number of stored milestones and releases",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, resourceCount)
}

// observe refreshes the resource count gauges every interval, until
// ctx is cancelled.  A non-positive interval sets the gauges once.
func observe(ctx context.Context, clk clock.Clock, rm roadmap.Roadmap, interval time.Duration) {
	if interval <= 0 {
		observeAndLog(ctx, rm)
		return
	}
	ticker := clk.Ticker(interval)
	defer ticker.Stop()
	for {
		observeAndLog(ctx, rm)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func observeAndLog(ctx context.Context, rm roadmap.Roadmap) {
	if err := observeOnce(ctx, rm); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Warn("Could not count resources")
	}
}

// observeOnce sets the resource count gauges from the current
// contents of rm.
func observeOnce(ctx context.Context, rm roadmap.Roadmap) error {
	milestones, err := rm.Milestones().Milestones(ctx)
	if err != nil {
		return err
	}
	releases, err := rm.Releases().Releases(ctx)
	if err != nil {
		return err
	}
	resourceCount.With(prometheus.Labels{"resource": "milestones"}).Set(float64(len(milestones)))
	resourceCount.With(prometheus.Labels{"resource": "releases"}).Set(float64(len(releases)))
	return nil
}
