// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package roadmap

import "errors"

// ErrNoName is returned when creating or updating a milestone that
// has an empty name.
var ErrNoName = errors.New("Milestone must have a name")

// ErrNoVersion is returned when creating or updating a release that
// has an empty version.
var ErrNoVersion = errors.New("Release must have a version")
