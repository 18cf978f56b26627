// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a Roadmap-compatible HTTP REST client
// that talks to the matching server in the "restserver" package.
//
// The server in github.com/diffeo/go-roadmap/cmd/roadmapd can run a
// compatible REST server.  Call New() with the URL of its root
// document; for instance,
//
//     r, err := restclient.New("http://localhost:8080/api/")
package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/diffeo/go-roadmap/roadmap"
)

// New creates a new Roadmap interface that speaks to an external
// REST server, using the default HTTP client.
func New(baseURL string) (roadmap.Roadmap, error) {
	return NewWithClient(baseURL, http.DefaultClient)
}

// NewWithClient creates a new Roadmap interface that speaks to an
// external REST server through a specific HTTP client.  The root
// document is fetched immediately, so this fails if the server is
// unreachable.
func NewWithClient(baseURL string, client *http.Client) (roadmap.Roadmap, error) {
	var (
		err  error
		base *url.URL
		r    *restRoadmap
	)
	base, err = url.Parse(baseURL)
	if err == nil {
		r = &restRoadmap{
			resource: resource{URL: base, Client: client},
		}
		err = r.Refresh(context.Background())
	}

	if err != nil {
		return nil, err
	}
	return r, nil
}

type restRoadmap struct {
	resource
	Representation restdata.RootData
}

// Refresh reloads the root document.
func (r *restRoadmap) Refresh(ctx context.Context) error {
	r.Representation = restdata.RootData{}
	return r.Do(ctx, http.MethodGet, r.URL, nil, &r.Representation)
}

func (r *restRoadmap) Milestones() roadmap.MilestoneService {
	return &milestoneService{r}
}

func (r *restRoadmap) Releases() roadmap.ReleaseService {
	return &releaseService{r}
}

// idVars builds the URI template variables for an object URL.
func idVars(id int64) map[string]interface{} {
	return map[string]interface{}{"id": strconv.FormatInt(id, 10)}
}

// noVars is the variable set for URLs that are not templates.
func noVars() map[string]interface{} {
	return map[string]interface{}{}
}
