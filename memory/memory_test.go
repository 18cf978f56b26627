// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/stretchr/testify/assert"
)

// TestConcurrentCreate checks that concurrent creates each get a
// distinct ID.
func TestConcurrentCreate(t *testing.T) {
	r := New()
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := r.Releases().CreateRelease(ctx, roadmap.Release{Version: "v"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := r.Releases().Releases(ctx)
	if assert.NoError(t, err) && assert.Len(t, list, n) {
		for i, rel := range list {
			assert.Equal(t, int64(i+1), *rel.ID)
		}
	}
}

// TestIDsNotReused checks that deleting the newest milestone does
// not hand its ID out again.
func TestIDsNotReused(t *testing.T) {
	r := New()
	ctx := context.Background()
	m, err := r.Milestones().CreateMilestone(ctx, roadmap.Milestone{Name: "a"})
	assert.NoError(t, err)
	_, err = r.Milestones().DeleteMilestone(ctx, *m.ID)
	assert.NoError(t, err)
	m2, err := r.Milestones().CreateMilestone(ctx, roadmap.Milestone{Name: "b"})
	if assert.NoError(t, err) {
		assert.NotEqual(t, *m.ID, *m2.ID)
	}
}
