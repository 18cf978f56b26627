// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"

	"github.com/diffeo/go-roadmap/roadmap"
)

type milestoneService struct {
	roadmap *memRoadmap
}

func (s *milestoneService) Milestones(ctx context.Context) (result []roadmap.Milestone, err error) {
	err = s.roadmap.do(func() error {
		all := s.roadmap.milestones
		ids := make([]int64, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		sortIDs(ids)
		result = make([]roadmap.Milestone, len(ids))
		for i, id := range ids {
			result[i] = all[id]
		}
		return nil
	})
	return
}

func (s *milestoneService) Milestone(ctx context.Context, id int64) (m roadmap.Milestone, found bool, err error) {
	err = s.roadmap.do(func() error {
		m, found = s.roadmap.milestones[id]
		return nil
	})
	return
}

func (s *milestoneService) CreateMilestone(ctx context.Context, in roadmap.Milestone) (m roadmap.Milestone, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	err = s.roadmap.do(func() error {
		s.roadmap.lastMilestone++
		m = in.WithID(s.roadmap.lastMilestone)
		s.roadmap.milestones[*m.ID] = m
		return nil
	})
	return
}

func (s *milestoneService) UpdateMilestone(ctx context.Context, id int64, in roadmap.Milestone) (m roadmap.Milestone, found bool, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	err = s.roadmap.do(func() error {
		if _, found = s.roadmap.milestones[id]; found {
			m = in.WithID(id)
			s.roadmap.milestones[id] = m
		}
		return nil
	})
	return
}

func (s *milestoneService) DeleteMilestone(ctx context.Context, id int64) (found bool, err error) {
	err = s.roadmap.do(func() error {
		if _, found = s.roadmap.milestones[id]; found {
			delete(s.roadmap.milestones, id)
		}
		return nil
	})
	return
}
