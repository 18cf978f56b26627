// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/gorilla/mux"
)

// PathPrefix is the URL path under which NewRouter places the API.
const PathPrefix = "/api"

// NewRouter creates a new HTTP handler that processes all roadmap
// requests.  All resources are under PathPrefix, e.g.
// /api/milestones/1.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(rm roadmap.Roadmap) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	PopulateRouter(r.PathPrefix(PathPrefix).Subrouter(), rm)
	return r
}

// PopulateRouter adds roadmap routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the interface under a different path:
//
//     import "github.com/diffeo/go-roadmap/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     s := r.PathPrefix("/roadmap").Subrouter()
//     PopulateRouter(s, memory.New())
func PopulateRouter(r *mux.Router, rm roadmap.Roadmap) {
	api := &restAPI{Roadmap: rm, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the roadmap REST API.
type restAPI struct {
	Roadmap roadmap.Roadmap
	Router  *mux.Router
}

// PopulateRouter adds all roadmap URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateMilestone(r)
	api.PopulateRelease(r)
	r.Path("/").Name("root").Handler(&resourceHandler{
		Representation: restdata.RootData{},
		Context:        api.Context,
		Get:            api.RootDocument,
	})
}

// RootDocument returns links to every collection.
func (api *restAPI) RootDocument(ctx *requestContext) (interface{}, error) {
	resp := restdata.RootData{}
	err := buildURLs(api.Router).
		URL(&resp.MilestonesURL, "milestones").
		Template(&resp.MilestoneURL, "milestone", "id").
		URL(&resp.ReleasesURL, "releases").
		Template(&resp.ReleaseURL, "release", "id").
		Error
	return resp, err
}

// notFound writes a bare 404 response, matching what the resource
// handlers do for missing objects.
func notFound(resp http.ResponseWriter, req *http.Request) {
	resp.WriteHeader(http.StatusNotFound)
}
