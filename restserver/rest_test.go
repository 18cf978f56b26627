// Regression tests for rest.go.
//
// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/diffeo/go-roadmap/memory"
	"github.com/diffeo/go-roadmap/restdata"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router := NewRouter(memory.New())
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/api/milestones",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNegotiateResponse(t *testing.T) {
	tests := []struct {
		Accept string
		Type   string
		Status int
	}{
		{"", restdata.PlainJSONMediaType, 0},
		{"*/*", restdata.PlainJSONMediaType, 0},
		{"application/*", restdata.PlainJSONMediaType, 0},
		{"text/*", "text/json", 0},
		{"text/html, application/json;q=0.5", restdata.PlainJSONMediaType, 0},
		{restdata.V1JSONMediaType, restdata.V1JSONMediaType, 0},
		{"*/*;q=0.1, " + restdata.JSONMediaType, restdata.JSONMediaType, 0},
		{"text/html", "", http.StatusNotAcceptable},
		{"application/json;q=2", "", http.StatusBadRequest},
		{"application/json;q=x", "", http.StatusBadRequest},
	}
	for _, test := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		actual, err := negotiateResponse(req)
		if test.Status == 0 {
			if assert.NoError(t, err, test.Accept) {
				assert.Equal(t, test.Type, actual, test.Accept)
			}
		} else if assert.Error(t, err, test.Accept) {
			errS, ok := err.(restdata.ErrorStatus)
			if assert.True(t, ok, test.Accept) {
				assert.Equal(t, test.Status, errS.HTTPStatus(), test.Accept)
			}
		}
	}
}

func TestNotAcceptable(t *testing.T) {
	router := NewRouter(memory.New())
	req := httptest.NewRequest(http.MethodGet, "/api/milestones", nil)
	req.Header.Set("Accept", "image/png")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotAcceptable, resp.Code)
}

func TestVendorMediaType(t *testing.T) {
	router := NewRouter(memory.New())
	req := httptest.NewRequest(http.MethodPost, "/api/releases",
		strings.NewReader(`{"version":"v2.0","releaseDate":"2024-06-01"}`))
	req.Header.Set("Content-Type", restdata.V1JSONMediaType)
	req.Header.Set("Accept", restdata.V1JSONMediaType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, restdata.V1JSONMediaType, resp.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1,"version":"v2.0","releaseDate":"2024-06-01"}`, resp.Body.String())
}

func TestUnsupportedMediaType(t *testing.T) {
	router := NewRouter(memory.New())
	req := httptest.NewRequest(http.MethodPost, "/api/milestones",
		strings.NewReader(`name=x`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
}

func TestHead(t *testing.T) {
	router := NewRouter(memory.New())
	req := httptest.NewRequest(http.MethodHead, "/api/milestones", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.String())
}
