// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres_test

import (
	"os"
	"testing"

	"github.com/diffeo/go-roadmap/postgres"
	"github.com/diffeo/go-roadmap/roadmap/roadmaptest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic roadmap tests against a live PostgreSQL
// database, dropping all of its tables before each test.
type Suite struct {
	roadmaptest.Suite
	connectionString string
}

func (s *Suite) SetupTest() {
	db, err := postgres.Open(s.connectionString)
	s.Require().NoError(err)
	defer db.Close()
	s.Require().NoError(postgres.Drop(db))

	s.Roadmap, err = postgres.New(s.connectionString)
	s.Require().NoError(err)
}

// TestRoadmap is the top-level entry point to run tests.
//
// The connection string comes from $ROADMAP_POSTGRES.  If that is
// unset but $PGHOST is set, an empty connection string is used, and
// the standard libpq environment variables described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html
// fill in the rest.
func TestRoadmap(t *testing.T) {
	connectionString, ok := os.LookupEnv("ROADMAP_POSTGRES")
	if !ok && os.Getenv("PGHOST") == "" {
		t.Skip("set ROADMAP_POSTGRES or PGHOST to run PostgreSQL tests")
	}
	suite.Run(t, &Suite{connectionString: connectionString})
}
