// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-roadmap/roadmap"
)

type releaseService struct {
	root *restRoadmap
}

func (s *releaseService) Releases(ctx context.Context) ([]roadmap.Release, error) {
	list := []roadmap.Release{}
	err := s.root.GetFrom(ctx, s.root.Representation.ReleasesURL, noVars(), &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *releaseService) Release(ctx context.Context, id int64) (r roadmap.Release, found bool, err error) {
	err = s.root.GetFrom(ctx, s.root.Representation.ReleaseURL, idVars(id), &r)
	found = err == nil
	if isNotFound(err) {
		err = nil
	}
	return
}

func (s *releaseService) CreateRelease(ctx context.Context, in roadmap.Release) (r roadmap.Release, err error) {
	err = s.root.PostTo(ctx, s.root.Representation.ReleasesURL, noVars(), in, &r)
	return
}

func (s *releaseService) UpdateRelease(ctx context.Context, id int64, in roadmap.Release) (r roadmap.Release, found bool, err error) {
	err = s.root.PutTo(ctx, s.root.Representation.ReleaseURL, idVars(id), in, &r)
	found = err == nil
	if isNotFound(err) {
		err = nil
	}
	return
}

func (s *releaseService) DeleteRelease(ctx context.Context, id int64) (found bool, err error) {
	err = s.root.DeleteAt(ctx, s.root.Representation.ReleaseURL, idVars(id))
	found = err == nil
	if isNotFound(err) {
		err = nil
	}
	return
}
