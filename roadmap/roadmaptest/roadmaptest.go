// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package roadmaptest provides generic functional tests for the
// Roadmap interface.  A typical backend test module needs to wrap
// Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-roadmap/roadmap/roadmaptest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             roadmaptest.Suite
//     }
//
//     // SetupTest creates a fresh backend for every test.
//     func (s *Suite) SetupTest() {
//             s.Roadmap = New()
//     }
//
//     // TestRoadmap runs the Roadmap generic tests.
//     func TestRoadmap(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
//
// Every test expects to start from an empty roadmap.
package roadmaptest

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic Roadmap backend test suite.
type Suite struct {
	suite.Suite

	// Clock contains the time source used to pick "today" in
	// tests.  It is pre-initialized to a mock clock.
	Clock *clock.Mock

	// Roadmap contains the top-level interface to the backend
	// under test.  It is set by importing packages.
	Roadmap roadmap.Roadmap
}

// SetupSuite does one-time initialization for the test suite.
func (s *Suite) SetupSuite() {
	s.Clock = clock.NewMock()
	s.Clock.Add(20000 * 24 * time.Hour)
}

// Today returns the current date according to the suite clock.
func (s *Suite) Today() roadmap.Date {
	return roadmap.Today(s.Clock)
}

// ctx returns the context used for backend calls.
func (s *Suite) ctx() context.Context {
	return context.Background()
}
