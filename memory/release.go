// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"

	"github.com/diffeo/go-roadmap/roadmap"
)

type releaseService struct {
	roadmap *memRoadmap
}

func (s *releaseService) Releases(ctx context.Context) (result []roadmap.Release, err error) {
	err = s.roadmap.do(func() error {
		all := s.roadmap.releases
		ids := make([]int64, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		sortIDs(ids)
		result = make([]roadmap.Release, len(ids))
		for i, id := range ids {
			result[i] = all[id]
		}
		return nil
	})
	return
}

func (s *releaseService) Release(ctx context.Context, id int64) (r roadmap.Release, found bool, err error) {
	err = s.roadmap.do(func() error {
		r, found = s.roadmap.releases[id]
		return nil
	})
	return
}

func (s *releaseService) CreateRelease(ctx context.Context, in roadmap.Release) (r roadmap.Release, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	err = s.roadmap.do(func() error {
		s.roadmap.lastRelease++
		r = in.WithID(s.roadmap.lastRelease)
		s.roadmap.releases[*r.ID] = r
		return nil
	})
	return
}

func (s *releaseService) UpdateRelease(ctx context.Context, id int64, in roadmap.Release) (r roadmap.Release, found bool, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	err = s.roadmap.do(func() error {
		if _, found = s.roadmap.releases[id]; found {
			r = in.WithID(id)
			s.roadmap.releases[id] = r
		}
		return nil
	})
	return
}

func (s *releaseService) DeleteRelease(ctx context.Context, id int64) (found bool, err error) {
	err = s.roadmap.do(func() error {
		if _, found = s.roadmap.releases[id]; found {
			delete(s.roadmap.releases, id)
		}
		return nil
	})
	return
}
