// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal service flow, either at
// initial startup or from an external tool.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_milestone",
			Up: []string{
				"CREATE TABLE " + milestoneTable + "(" +
					"id BIGSERIAL PRIMARY KEY, " +
					"name TEXT NOT NULL, " +
					"due_date DATE)",
			},
			Down: []string{
				"DROP TABLE " + milestoneTable,
			},
		},
		{
			Id: "2_release",
			Up: []string{
				"CREATE TABLE " + releaseTable + "(" +
					"id BIGSERIAL PRIMARY KEY, " +
					"version TEXT NOT NULL, " +
					"release_date DATE)",
			},
			Down: []string{
				"DROP TABLE " + releaseTable,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
