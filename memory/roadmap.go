// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// Roadmap.  There is no persistence, nor is there any automatic
// sharing.  The entire system is behind a single global semaphore to
// protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation of
// Roadmap that can be used for testing, including in-process testing
// of the REST server.  It is tuned for correctness, not performance
// or scalability.
package memory

import (
	"sort"
	"sync"

	"github.com/diffeo/go-roadmap/roadmap"
)

// New creates a new Roadmap interface that operates purely in
// memory.
func New() roadmap.Roadmap {
	r := &memRoadmap{
		milestones: make(map[int64]roadmap.Milestone),
		releases:   make(map[int64]roadmap.Release),
	}
	r.milestoneService = milestoneService{r}
	r.releaseService = releaseService{r}
	return r
}

type memRoadmap struct {
	sem sync.Mutex

	milestones    map[int64]roadmap.Milestone
	lastMilestone int64
	releases      map[int64]roadmap.Release
	lastRelease   int64

	milestoneService milestoneService
	releaseService   releaseService
}

func (r *memRoadmap) Milestones() roadmap.MilestoneService {
	return &r.milestoneService
}

func (r *memRoadmap) Releases() roadmap.ReleaseService {
	return &r.releaseService
}

// do runs f under the global lock.
func (r *memRoadmap) do(f func() error) error {
	r.sem.Lock()
	defer r.sem.Unlock()
	return f()
}

// sortIDs sorts a list of object IDs in place and returns it.
func sortIDs(ids []int64) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
