// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package roadmaptest

import (
	"github.com/diffeo/go-roadmap/roadmap"
)

func (s *Suite) createRelease(version string, date roadmap.Date) roadmap.Release {
	r, err := s.Roadmap.Releases().CreateRelease(s.ctx(), roadmap.Release{
		Version:     version,
		ReleaseDate: date,
	})
	s.Require().NoError(err)
	s.Require().NotNil(r.ID)
	return r
}

// TestReleaseLifetime walks a single release through creation,
// retrieval, update, and deletion.
func (s *Suite) TestReleaseLifetime() {
	var (
		svc     = s.Roadmap.Releases()
		today   = s.Today()
		release roadmap.Release
		found   bool
		deleted bool
		err     error
	)

	list, err := svc.Releases(s.ctx())
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)

	release = s.createRelease("v1.0", today)
	s.Equal("v1.0", release.Version)
	s.Equal(today, release.ReleaseDate)
	id := *release.ID

	release, found, err = svc.Release(s.ctx(), id)
	if s.NoError(err) && s.True(found) && s.NotNil(release.ID) {
		s.Equal(id, *release.ID)
		s.Equal("v1.0", release.Version)
		s.Equal(today, release.ReleaseDate)
	}

	release, found, err = svc.UpdateRelease(s.ctx(), id, roadmap.Release{
		Version:     "v1.0.1",
		ReleaseDate: today.AddDays(3),
	})
	if s.NoError(err) && s.True(found) && s.NotNil(release.ID) {
		s.Equal(id, *release.ID)
		s.Equal("v1.0.1", release.Version)
		s.Equal(today.AddDays(3), release.ReleaseDate)
	}

	deleted, err = svc.DeleteRelease(s.ctx(), id)
	s.NoError(err)
	s.True(deleted)

	_, found, err = svc.Release(s.ctx(), id)
	s.NoError(err)
	s.False(found)

	deleted, err = svc.DeleteRelease(s.ctx(), id)
	s.NoError(err)
	s.False(deleted)
}

// TestReleaseList checks that two releases list in creation order.
func (s *Suite) TestReleaseList() {
	r1 := s.createRelease("v1.0", s.Today())
	r2 := s.createRelease("v2.0", s.Today().AddDays(30))

	list, err := s.Roadmap.Releases().Releases(s.ctx())
	if s.NoError(err) && s.Len(list, 2) {
		s.Equal([]roadmap.Release{r1, r2}, list)
	}
}

// TestReleaseMissing checks lookups, updates, and deletes of a
// release that was never created.
func (s *Suite) TestReleaseMissing() {
	svc := s.Roadmap.Releases()

	_, found, err := svc.Release(s.ctx(), 999)
	s.NoError(err)
	s.False(found)

	_, found, err = svc.UpdateRelease(s.ctx(), 999, roadmap.Release{Version: "v9"})
	s.NoError(err)
	s.False(found)

	deleted, err := svc.DeleteRelease(s.ctx(), 999)
	s.NoError(err)
	s.False(deleted)
}

// TestReleaseUpdateKeepsID checks that an ID in the update body
// does not move the release.
func (s *Suite) TestReleaseUpdateKeepsID() {
	r1 := s.createRelease("v1.0", s.Today())
	r2 := s.createRelease("v2.0", s.Today())

	updated, found, err := s.Roadmap.Releases().UpdateRelease(s.ctx(), *r1.ID, roadmap.Release{
		ID:      r2.ID,
		Version: "v1.1",
	})
	if s.NoError(err) && s.True(found) && s.NotNil(updated.ID) {
		s.Equal(*r1.ID, *updated.ID)
	}

	got, found, err := s.Roadmap.Releases().Release(s.ctx(), *r2.ID)
	if s.NoError(err) && s.True(found) {
		s.Equal("v2.0", got.Version)
	}
}

// TestReleaseNoVersion checks that a release must have a version.
func (s *Suite) TestReleaseNoVersion() {
	svc := s.Roadmap.Releases()
	_, err := svc.CreateRelease(s.ctx(), roadmap.Release{ReleaseDate: s.Today()})
	s.Equal(roadmap.ErrNoVersion, err)

	r := s.createRelease("v1.0", s.Today())
	_, _, err = svc.UpdateRelease(s.ctx(), *r.ID, roadmap.Release{ReleaseDate: s.Today()})
	s.Equal(roadmap.ErrNoVersion, err)
}
