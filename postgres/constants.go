// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

const (
	// SQL table names:
	milestoneTable = "milestone"
	releaseTable   = "release"

	// SQL column names:
	milestoneID      = milestoneTable + ".id"
	milestoneName    = milestoneTable + ".name"
	milestoneDueDate = milestoneTable + ".due_date"
	releaseID        = releaseTable + ".id"
	releaseVersion   = releaseTable + ".version"
	releaseDate      = releaseTable + ".release_date"
)

// Bare column names, as they appear in INSERT and UPDATE ... SET,
// where PostgreSQL does not accept a table qualifier.
const (
	nameColumn        = "name"
	dueDateColumn     = "due_date"
	versionColumn     = "version"
	releaseDateColumn = "release_date"
)
