// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/gorilla/mux"
)

// errNoSuchMilestone produces the 404 error for a missing milestone.
func errNoSuchMilestone(id int64) error {
	return restdata.ErrNotFound{Err: fmt.Errorf("No such milestone %v", id)}
}

// MilestoneList returns every milestone, in the order the service
// returns them.
func (api *restAPI) MilestoneList(ctx *requestContext) (interface{}, error) {
	list, err := api.Roadmap.Milestones().Milestones(ctx.Context)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []roadmap.Milestone{}
	}
	return list, nil
}

// MilestonePost creates a new milestone.  Any ID in the request is
// ignored.
func (api *restAPI) MilestonePost(ctx *requestContext, in interface{}) (interface{}, error) {
	req, valid := in.(roadmap.Milestone)
	if !valid {
		return nil, errUnmarshal
	}
	m, err := api.Roadmap.Milestones().CreateMilestone(ctx.Context, req)
	if err != nil {
		return nil, badInput(err)
	}
	return m, nil
}

// MilestoneGet returns a single milestone.
func (api *restAPI) MilestoneGet(ctx *requestContext) (interface{}, error) {
	m, found, err := api.Roadmap.Milestones().Milestone(ctx.Context, ctx.ID)
	if err == nil && !found {
		err = errNoSuchMilestone(ctx.ID)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MilestonePut replaces an existing milestone.
func (api *restAPI) MilestonePut(ctx *requestContext, in interface{}) (interface{}, error) {
	req, valid := in.(roadmap.Milestone)
	if !valid {
		return nil, errUnmarshal
	}
	m, found, err := api.Roadmap.Milestones().UpdateMilestone(ctx.Context, ctx.ID, req)
	if err == nil && !found {
		err = errNoSuchMilestone(ctx.ID)
	}
	if err != nil {
		return nil, badInput(err)
	}
	return m, nil
}

// MilestoneDelete deletes a milestone.
func (api *restAPI) MilestoneDelete(ctx *requestContext) (interface{}, error) {
	found, err := api.Roadmap.Milestones().DeleteMilestone(ctx.Context, ctx.ID)
	if err == nil && !found {
		err = errNoSuchMilestone(ctx.ID)
	}
	return nil, err
}

// PopulateMilestone adds milestone routes to a router.
func (api *restAPI) PopulateMilestone(r *mux.Router) {
	r.Path("/milestones").Name("milestones").Handler(&resourceHandler{
		Representation: roadmap.Milestone{},
		Context:        api.Context,
		Get:            api.MilestoneList,
		Post:           api.MilestonePost,
	})
	r.Path("/milestones/{id:[0-9]+}").Name("milestone").Handler(&resourceHandler{
		Representation: roadmap.Milestone{},
		Context:        api.Context,
		Get:            api.MilestoneGet,
		Put:            api.MilestonePut,
		Delete:         api.MilestoneDelete,
	})
}
