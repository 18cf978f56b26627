// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package roadmaptest

import (
	"github.com/diffeo/go-roadmap/roadmap"
)

// createMilestone creates a milestone and fails the test if that
// does not work.
func (s *Suite) createMilestone(name string, due roadmap.Date) roadmap.Milestone {
	m, err := s.Roadmap.Milestones().CreateMilestone(s.ctx(), roadmap.Milestone{
		Name:    name,
		DueDate: due,
	})
	s.Require().NoError(err)
	s.Require().NotNil(m.ID)
	return m
}

// TestMilestoneEmpty checks that a new backend has no milestones.
func (s *Suite) TestMilestoneEmpty() {
	list, err := s.Roadmap.Milestones().Milestones(s.ctx())
	if s.NoError(err) {
		s.NotNil(list)
		s.Len(list, 0)
	}
}

// TestMilestoneCreate checks that creating a milestone assigns an ID
// and that the milestone can be retrieved again.
func (s *Suite) TestMilestoneCreate() {
	today := s.Today()
	m := s.createMilestone("Milestone 1", today)
	s.Equal("Milestone 1", m.Name)
	s.Equal(today, m.DueDate)

	got, found, err := s.Roadmap.Milestones().Milestone(s.ctx(), *m.ID)
	if s.NoError(err) && s.True(found) {
		s.Equal(m, got)
	}
}

// TestMilestoneCreateIgnoresID checks that the service, not the
// caller, assigns IDs.
func (s *Suite) TestMilestoneCreateIgnoresID() {
	first := s.createMilestone("first", s.Today())
	m, err := s.Roadmap.Milestones().CreateMilestone(s.ctx(), roadmap.Milestone{
		ID:   first.ID,
		Name: "second",
	})
	if s.NoError(err) && s.NotNil(m.ID) {
		s.NotEqual(*first.ID, *m.ID)
	}

	list, err := s.Roadmap.Milestones().Milestones(s.ctx())
	if s.NoError(err) {
		s.Len(list, 2)
	}
}

// TestMilestoneList checks that milestones come back in creation
// order.
func (s *Suite) TestMilestoneList() {
	today := s.Today()
	m1 := s.createMilestone("Milestone 1", today)
	m2 := s.createMilestone("Milestone 2", today.AddDays(1))

	list, err := s.Roadmap.Milestones().Milestones(s.ctx())
	if s.NoError(err) && s.Len(list, 2) {
		s.Equal(m1, list[0])
		s.Equal(m2, list[1])
		s.True(*list[0].ID < *list[1].ID)
	}
}

// TestMilestoneNotFound checks the absent-value path of every
// by-ID operation.
func (s *Suite) TestMilestoneNotFound() {
	svc := s.Roadmap.Milestones()

	_, found, err := svc.Milestone(s.ctx(), 12345)
	s.NoError(err)
	s.False(found)

	_, found, err = svc.UpdateMilestone(s.ctx(), 12345, roadmap.Milestone{Name: "x"})
	s.NoError(err)
	s.False(found)

	deleted, err := svc.DeleteMilestone(s.ctx(), 12345)
	s.NoError(err)
	s.False(deleted)

	list, err := svc.Milestones(s.ctx())
	if s.NoError(err) {
		s.Len(list, 0)
	}
}

// TestMilestoneUpdate checks that an update replaces the fields of
// an existing milestone.
func (s *Suite) TestMilestoneUpdate() {
	today := s.Today()
	m := s.createMilestone("Milestone 1", today)

	updated, found, err := s.Roadmap.Milestones().UpdateMilestone(s.ctx(), *m.ID, roadmap.Milestone{
		Name:    "Updated",
		DueDate: today.AddDays(7),
	})
	if s.NoError(err) && s.True(found) && s.NotNil(updated.ID) {
		s.Equal(*m.ID, *updated.ID)
		s.Equal("Updated", updated.Name)
		s.Equal(today.AddDays(7), updated.DueDate)
	}

	got, found, err := s.Roadmap.Milestones().Milestone(s.ctx(), *m.ID)
	if s.NoError(err) && s.True(found) {
		s.Equal(updated, got)
	}
}

// TestMilestoneDelete checks that deleting is not idempotent: the
// second delete reports nothing was there.
func (s *Suite) TestMilestoneDelete() {
	m1 := s.createMilestone("one", s.Today())
	m2 := s.createMilestone("two", s.Today())
	svc := s.Roadmap.Milestones()

	deleted, err := svc.DeleteMilestone(s.ctx(), *m1.ID)
	s.NoError(err)
	s.True(deleted)

	deleted, err = svc.DeleteMilestone(s.ctx(), *m1.ID)
	s.NoError(err)
	s.False(deleted)

	_, found, err := svc.Milestone(s.ctx(), *m1.ID)
	s.NoError(err)
	s.False(found)

	list, err := svc.Milestones(s.ctx())
	if s.NoError(err) && s.Len(list, 1) {
		s.Equal(m2, list[0])
	}
}

// TestMilestoneNoName checks that a milestone must have a name.
func (s *Suite) TestMilestoneNoName() {
	svc := s.Roadmap.Milestones()
	_, err := svc.CreateMilestone(s.ctx(), roadmap.Milestone{DueDate: s.Today()})
	s.Equal(roadmap.ErrNoName, err)

	m := s.createMilestone("named", s.Today())
	_, _, err = svc.UpdateMilestone(s.ctx(), *m.ID, roadmap.Milestone{})
	s.Equal(roadmap.ErrNoName, err)

	got, found, err := svc.Milestone(s.ctx(), *m.ID)
	if s.NoError(err) && s.True(found) {
		s.Equal("named", got.Name)
	}
}

// TestMilestoneNoDate checks that the due date may be left unset.
func (s *Suite) TestMilestoneNoDate() {
	m := s.createMilestone("someday", roadmap.Date{})
	got, found, err := s.Roadmap.Milestones().Milestone(s.ctx(), *m.ID)
	if s.NoError(err) && s.True(found) {
		s.True(got.DueDate.IsZero())
	}
}
