// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package roadmap defines an abstract API to a project roadmap: the
// milestones a project is working toward and the releases it has
// shipped.
//
// Applications generally get a Roadmap from a specific
// implementation, such as the memory or postgres packages, or the
// restclient package that talks to a remote roadmapd server.  All of
// these implementations behave identically as far as callers can
// tell.
//
// Milestone and Release are plain values.  Their ID field is nil on
// values that have not been stored yet, and is assigned exclusively
// by the service that stores them.  Lookups that can fail to find
// anything report that with a boolean, not an error; errors are
// reserved for invalid input and for the storage layer itself.
package roadmap

import "context"

// Roadmap is the principal interface to the roadmap system.
type Roadmap interface {
	// Milestones returns the service that manages milestones.
	Milestones() MilestoneService

	// Releases returns the service that manages releases.
	Releases() ReleaseService
}

// Milestone is a named target date in a project's plan.
type Milestone struct {
	// ID is the identifier of the stored milestone.  It is nil on
	// a milestone that has not been created yet; any value sent
	// on create or update is ignored.
	ID *int64 `json:"id"`

	// Name is a human-readable label for the milestone.  It must
	// not be empty.
	Name string `json:"name"`

	// DueDate is the date the milestone is expected to be met.
	DueDate Date `json:"dueDate"`
}

// Release is a version of a project that has been (or will be)
// published.
type Release struct {
	// ID is the identifier of the stored release.  It is nil on a
	// release that has not been created yet.
	ID *int64 `json:"id"`

	// Version is the label of the release, for instance "v1.0".
	// It must not be empty.
	Version string `json:"version"`

	// ReleaseDate is the date of the release.
	ReleaseDate Date `json:"releaseDate"`
}

// MilestoneService creates, retrieves, changes, and deletes
// milestones.
type MilestoneService interface {
	// Milestones returns all of the stored milestones, in
	// ascending order of ID.  If there are none, returns an
	// empty slice.
	Milestones(ctx context.Context) ([]Milestone, error)

	// Milestone retrieves a single milestone by its ID.  The
	// boolean return is false if there is no such milestone.
	Milestone(ctx context.Context, id int64) (Milestone, bool, error)

	// CreateMilestone stores a new milestone and returns it with
	// its ID assigned.  Returns ErrNoName if the milestone has no
	// name.
	CreateMilestone(ctx context.Context, milestone Milestone) (Milestone, error)

	// UpdateMilestone replaces the name and due date of the
	// milestone with the given ID.  The boolean return is false
	// if there is no such milestone, in which case nothing is
	// changed.  Returns ErrNoName if the milestone has no name.
	UpdateMilestone(ctx context.Context, id int64, milestone Milestone) (Milestone, bool, error)

	// DeleteMilestone removes the milestone with the given ID.
	// Returns true if a milestone existed and was removed.
	DeleteMilestone(ctx context.Context, id int64) (bool, error)
}

// ReleaseService creates, retrieves, changes, and deletes releases.
// Its contract is the same as MilestoneService.
type ReleaseService interface {
	// Releases returns all of the stored releases, in ascending
	// order of ID.
	Releases(ctx context.Context) ([]Release, error)

	// Release retrieves a single release by its ID.  The boolean
	// return is false if there is no such release.
	Release(ctx context.Context, id int64) (Release, bool, error)

	// CreateRelease stores a new release and returns it with its
	// ID assigned.  Returns ErrNoVersion if the release has no
	// version.
	CreateRelease(ctx context.Context, release Release) (Release, error)

	// UpdateRelease replaces the version and release date of the
	// release with the given ID.  The boolean return is false if
	// there is no such release.
	UpdateRelease(ctx context.Context, id int64, release Release) (Release, bool, error)

	// DeleteRelease removes the release with the given ID.
	// Returns true if a release existed and was removed.
	DeleteRelease(ctx context.Context, id int64) (bool, error)
}
