// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-roadmap/roadmap"
)

type milestoneService struct {
	root *restRoadmap
}

func (s *milestoneService) Milestones(ctx context.Context) ([]roadmap.Milestone, error) {
	list := []roadmap.Milestone{}
	err := s.root.GetFrom(ctx, s.root.Representation.MilestonesURL, noVars(), &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *milestoneService) Milestone(ctx context.Context, id int64) (roadmap.Milestone, bool, error) {
	var m roadmap.Milestone
	err := s.root.GetFrom(ctx, s.root.Representation.MilestoneURL, idVars(id), &m)
	if isNotFound(err) {
		return roadmap.Milestone{}, false, nil
	}
	if err != nil {
		return roadmap.Milestone{}, false, err
	}
	return m, true, nil
}

func (s *milestoneService) CreateMilestone(ctx context.Context, in roadmap.Milestone) (roadmap.Milestone, error) {
	var m roadmap.Milestone
	err := s.root.PostTo(ctx, s.root.Representation.MilestonesURL, noVars(), in, &m)
	return m, err
}

func (s *milestoneService) UpdateMilestone(ctx context.Context, id int64, in roadmap.Milestone) (roadmap.Milestone, bool, error) {
	var m roadmap.Milestone
	err := s.root.PutTo(ctx, s.root.Representation.MilestoneURL, idVars(id), in, &m)
	if isNotFound(err) {
		return roadmap.Milestone{}, false, nil
	}
	if err != nil {
		return roadmap.Milestone{}, false, err
	}
	return m, true, nil
}

func (s *milestoneService) DeleteMilestone(ctx context.Context, id int64) (bool, error) {
	err := s.root.DeleteAt(ctx, s.root.Representation.MilestoneURL, idVars(id))
	if isNotFound(err) {
		return false, nil
	}
	return err == nil, err
}
