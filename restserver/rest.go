// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// The bulk of this is dealing with HTTP content type negotiation, and
// providing a standard way to deal with input and output values.  The
// major variables are the type canonicalization map, the context
// builder, and the JSON codec.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/ugorji/go/codec"
)

var typeMap = map[string]string{
	"text/json":                 restdata.V1JSONMediaType,
	restdata.PlainJSONMediaType: restdata.V1JSONMediaType,
	restdata.JSONMediaType:      restdata.V1JSONMediaType,
	restdata.V1JSONMediaType:    restdata.V1JSONMediaType,
}

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = restdata.ErrBadRequest{Err: errors.New("Invalid Accept: header")}

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

type resourceHandler struct {
	// Representation is an object representing this resource.
	// A copy of this object will be passed to handler functions.
	Representation interface{}

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*requestContext, error)

	// Get, if non-nil, returns a representation of the object.
	// Its return type should be the same type as Representation,
	// though this is not enforced.
	Get func(*requestContext) (interface{}, error)

	// Put, if non-nil, updates the representation of the object.
	// The interface parameter is guaranteed to be the same type
	// as Representation.  The return can be any useful return
	// value.
	Put func(*requestContext, interface{}) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action, usually
	// creating a new object.  The interface parameter is
	// guaranteed to be the same type as Representation.
	Post func(*requestContext, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.  A nil return
	// produces 204 No Content.
	Delete func(*requestContext) (interface{}, error)
}

// allowed returns the list of methods this handler supports.
func (h *resourceHandler) allowed() []string {
	var methods []string
	if h.Get != nil {
		methods = append(methods, http.MethodGet, http.MethodHead)
	}
	if h.Put != nil {
		methods = append(methods, http.MethodPut)
	}
	if h.Post != nil {
		methods = append(methods, http.MethodPost)
	}
	if h.Delete != nil {
		methods = append(methods, http.MethodDelete)
	}
	return methods
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *requestContext
		in, out      interface{}
		err          error
		status       int
		responseType string
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			resp.Header().Set("Content-Type", restdata.PlainJSONMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			json := &codec.JsonHandle{}
			encoder := codec.NewEncoder(resp, json)
			_ = encoder.Encode(response)
		}
	}()

	// Start by trying to come up with a response type, even before
	// trying to parse the input.  This determines what format an
	// error message could be sent back as.
	if err == nil {
		// Errors here by default are in the header setup
		status = http.StatusBadRequest
		responseType, err = negotiateResponse(req)
		if err != nil {
			// Gotta pick something
			responseType = restdata.PlainJSONMediaType
		}
	}

	// Get bits from URL parameters
	if err == nil {
		ctx, err = h.Context(req)
	}

	// Read the JSON body, if it's there
	if err == nil && (req.Method == http.MethodPut || req.Method == http.MethodPost) {
		// Make a new object of the same type as h.Representation
		ptr := reflect.New(reflect.TypeOf(h.Representation))

		// Then decode the message body into that object
		contentType := req.Header.Get("Content-Type")
		err = restdata.Decode(contentType, req.Body, ptr.Interface())
		if err == nil {
			in = ptr.Elem().Interface()
		}
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		// If anything else goes wrong here, it's an error in
		// the backend
		status = http.StatusInternalServerError
		switch req.Method {
		case http.MethodGet, http.MethodHead:
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case http.MethodPut:
			if h.Put != nil {
				out, err = h.Put(ctx, in)
			}
		case http.MethodPost:
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case http.MethodDelete:
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		// Pick a better status code if we know of one
		if errS, hasStatus := err.(restdata.ErrorStatus); hasStatus {
			status = errS.HTTPStatus()
		}
		if status == http.StatusMethodNotAllowed {
			resp.Header().Set("Allow", strings.Join(h.allowed(), ", "))
		}
		if status == http.StatusNotFound {
			// Missing objects have no body at all
			out = nil
		} else {
			errResp := restdata.ErrorResponse{}
			errResp.FromError(err)
			out = errResp
		}
	} else if out == nil {
		status = http.StatusNoContent
	} else {
		status = http.StatusOK
	}
	if req.Method == http.MethodHead {
		out = nil
	}

	// Come up with a function to write the response.  It is
	// possible for the actual writer to fail, but by the point
	// this happens we've already written an HTTP status line, so
	// there is nothing better to do than drop the error.
	responseWriters := map[string]func(){
		restdata.V1JSONMediaType: func() {
			json := &codec.JsonHandle{}
			encoder := codec.NewEncoder(resp, json)
			_ = encoder.Encode(out)
		},
	}
	responseWriter, understood := responseWriters[typeMap[responseType]]
	if !understood {
		// We shouldn't get here, because it implies response
		// type negotiation failed...but here we are
		responseWriter = responseWriters[restdata.V1JSONMediaType]
		status = http.StatusInternalServerError
		out = restdata.ErrorResponse{Error: "error", Message: "Invalid response type " + responseType}
		responseType = restdata.PlainJSONMediaType
	}

	// Actually send the response
	if out != nil {
		resp.Header().Set("Content-Type", responseType)
	}
	resp.WriteHeader(status)
	if out != nil {
		responseWriter()
	}
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.
func negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return "", restdata.ErrBadRequest{Err: err}
		}

		// What is the "q" ("quality") parameter for this type?
		// If it is less than the best known so far, skip it
		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return "", restdata.ErrBadRequest{Err: err}
			}
			if q < 0.0 || q > 1.0 {
				return "", errBadAccept
			}
		}
		if q < bestQ {
			continue
		}

		// This is acceptable if it's listed in the type
		// map; or it's one of a couple of specific wildcards.
		// Also need to handle wildcard precedence.  So:
		if mediaType == "*/*" {
			// Doesn't override anything.
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			// Only overrides "*/*".
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if _, knownType := typeMap[mediaType]; knownType {
			// Overrides any wildcard.  We want the first one
			// at a given q to win.
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
		// Otherwise we don't recognize this type at all, so
		// just drop it.
	}
	// If this failed to win, return an error
	if bestQ == 0.0 {
		return "", errNotAcceptable{}
	}
	switch bestType {
	case "*/*", "application/*":
		return restdata.PlainJSONMediaType, nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
