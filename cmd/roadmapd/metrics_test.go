// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-roadmap/memory"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOnce(t *testing.T) {
	ctx := context.Background()
	rm := memory.New()
	for _, name := range []string{"Alpha", "Beta"} {
		_, err := rm.Milestones().CreateMilestone(ctx, roadmap.Milestone{Name: name})
		require.NoError(t, err)
	}
	_, err := rm.Releases().CreateRelease(ctx, roadmap.Release{Version: "v1.0"})
	require.NoError(t, err)

	require.NoError(t, observeOnce(ctx, rm))
	assert.Equal(t, 2.0, testutil.ToFloat64(resourceCount.WithLabelValues("milestones")))
	assert.Equal(t, 1.0, testutil.ToFloat64(resourceCount.WithLabelValues("releases")))
}

func TestObserveStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		observe(ctx, clock.NewMock(), memory.New(), time.Minute)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("observe did not stop after cancellation")
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(resourceCount.WithLabelValues("releases")))
}

func TestObserveZeroInterval(t *testing.T) {
	rm := memory.New()
	_, err := rm.Milestones().CreateMilestone(context.Background(), roadmap.Milestone{Name: "Alpha"})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		observe(context.Background(), clock.New(), rm, 0)
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(resourceCount.WithLabelValues("milestones")))
}
