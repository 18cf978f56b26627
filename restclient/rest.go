// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/diffeo/go-roadmap/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/ugorji/go/codec"
)

// resource is any object that has a URL.
type resource struct {
	URL    *url.URL
	Client *http.Client
}

// Template expands a URI template and returns the resulting URL,
// relative to the resource's own URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}

	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}

	return r.URL.Parse(expanded)
}

// Do performs some HTTP action.  If in is non-nil, the request data is
// serialized and sent as the body of, for instance, a POST request.
// If out is non-nil, the response data (if any) is deserialized into
// this object, which must be of pointer type.
func (r *resource) Do(ctx context.Context, method string, url *url.URL, in, out interface{}) (err error) {
	json := &codec.JsonHandle{}

	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		encoder := codec.NewEncoder(buf, json)
		if err = encoder.Encode(in); err != nil {
			return err
		}
		body = buf
	}

	// Create the request and set headers
	req, err := http.NewRequest(method, url.String(), body)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	if in != nil {
		req.Header.Set("Content-Type", restdata.V1JSONMediaType)
	}
	if out != nil {
		req.Header.Set("Accept", restdata.V1JSONMediaType)
	}

	// Actually do the request
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	// If the response included a body, clean up afterwards
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	// Check the response code
	if err = checkHTTPStatus(resp); err != nil {
		return err
	}

	// If there is both a body and a requested output,
	// decode it
	if resp.Body != nil && out != nil {
		contentType := resp.Header.Get("Content-Type")
		err = restdata.Decode(contentType, resp.Body, out)
	}

	return err // may be nil
}

// GetFrom retrieves a resource from some other URL.  template is
// interpreted as a URI template, modified by vars, and the result
// taken relative to the resource's URL.  The result is stored in
// out, which must be of pointer type.
func (r *resource) GetFrom(ctx context.Context, template string, vars map[string]interface{}, out interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodGet, url, nil, out)
	}
	return err
}

// PutTo updates a resource at some other URL.  The server response
// is stored in out, which must be of pointer type.
func (r *resource) PutTo(ctx context.Context, template string, vars map[string]interface{}, in, out interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodPut, url, in, out)
	}
	return err
}

// PostTo submits data to a service at some other URL.  The server
// response is stored in out, which must be of pointer type.
func (r *resource) PostTo(ctx context.Context, template string, vars map[string]interface{}, in, out interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodPost, url, in, out)
	}
	return err
}

// DeleteAt deletes the resource at some other URL.
func (r *resource) DeleteAt(ctx context.Context, template string, vars map[string]interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodDelete, url, nil, nil)
	}
	return err
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// isNotFound determines whether err came from an HTTP 404 response.
func isNotFound(err error) bool {
	if http, isHTTP := err.(ErrorHTTP); isHTTP {
		return http.Response.StatusCode == 404
	}
	return false
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding it as a better error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	err2 := restdata.Decode(contentType, bytes.NewReader(body), &errResp)
	if err2 == nil && errResp.Error != "" {
		// Given that we decoded that successfully, return the
		// server-provided error
		return errResp.ToError()
	}

	return ErrorHTTP{Response: resp, Body: string(body)}
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
