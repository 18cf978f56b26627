// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/gorilla/mux"
)

func errNoSuchRelease(id int64) error {
	return restdata.ErrNotFound{Err: fmt.Errorf("No such release %v", id)}
}

// ReleaseList returns every release.
func (api *restAPI) ReleaseList(ctx *requestContext) (interface{}, error) {
	list, err := api.Roadmap.Releases().Releases(ctx.Context)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []roadmap.Release{}
	}
	return list, nil
}

// ReleasePost creates a new release.
func (api *restAPI) ReleasePost(ctx *requestContext, in interface{}) (interface{}, error) {
	req, valid := in.(roadmap.Release)
	if !valid {
		return nil, errUnmarshal
	}
	r, err := api.Roadmap.Releases().CreateRelease(ctx.Context, req)
	if err != nil {
		return nil, badInput(err)
	}
	return r, nil
}

// ReleaseGet returns a single release.
func (api *restAPI) ReleaseGet(ctx *requestContext) (interface{}, error) {
	r, found, err := api.Roadmap.Releases().Release(ctx.Context, ctx.ID)
	if err == nil && !found {
		err = errNoSuchRelease(ctx.ID)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ReleasePut replaces an existing release.
func (api *restAPI) ReleasePut(ctx *requestContext, in interface{}) (interface{}, error) {
	req, valid := in.(roadmap.Release)
	if !valid {
		return nil, errUnmarshal
	}
	r, found, err := api.Roadmap.Releases().UpdateRelease(ctx.Context, ctx.ID, req)
	if err == nil && !found {
		err = errNoSuchRelease(ctx.ID)
	}
	if err != nil {
		return nil, badInput(err)
	}
	return r, nil
}

// ReleaseDelete deletes a release.
func (api *restAPI) ReleaseDelete(ctx *requestContext) (interface{}, error) {
	found, err := api.Roadmap.Releases().DeleteRelease(ctx.Context, ctx.ID)
	if err == nil && !found {
		err = errNoSuchRelease(ctx.ID)
	}
	return nil, err
}

// PopulateRelease adds release routes to a router.
func (api *restAPI) PopulateRelease(r *mux.Router) {
	r.Path("/releases").Name("releases").Handler(&resourceHandler{
		Representation: roadmap.Release{},
		Context:        api.Context,
		Get:            api.ReleaseList,
		Post:           api.ReleasePost,
	})
	r.Path("/releases/{id:[0-9]+}").Name("release").Handler(&resourceHandler{
		Representation: roadmap.Release{},
		Context:        api.Context,
		Get:            api.ReleaseGet,
		Put:            api.ReleasePut,
		Delete:         api.ReleaseDelete,
	})
}
