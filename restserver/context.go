// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if the put/post contract is violated and
// a handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// requestContext holds all of the information that can be extracted
// from the request URL.
type requestContext struct {
	// Context is the request's context, passed on to the
	// roadmap services.
	Context context.Context

	// ID is the object ID from the URL, if the route has one.
	ID int64
}

func (api *restAPI) Context(req *http.Request) (ctx *requestContext, err error) {
	ctx = &requestContext{Context: req.Context()}
	vars := mux.Vars(req)

	if id, present := vars["id"]; present {
		ctx.ID, err = strconv.ParseInt(id, 10, 64)
		if err != nil {
			// The route only matches digits, so this is an
			// out-of-range number, which can't name anything
			err = restdata.ErrNotFound{Err: fmt.Errorf("invalid id %q", id)}
		}
	}

	return
}

// badInput marks validation errors from the roadmap services as
// client errors.
func badInput(err error) error {
	switch err {
	case roadmap.ErrNoName, roadmap.ErrNoVersion:
		return restdata.ErrBadRequest{Err: err}
	}
	return err
}
