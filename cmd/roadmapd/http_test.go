// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-roadmap/memory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestRequestLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	h := NewHandler(memory.New(), logger)

	resp := serve(h, http.MethodGet, "/api/milestones")
	assert.Equal(t, http.StatusOK, resp.Code)

	id := resp.Header().Get(RequestIDHeader)
	_, err := uuid.FromString(id)
	assert.NoError(t, err, "request ID %q", id)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.DebugLevel, entry.Level)
		assert.Equal(t, id, entry.Data["request_id"])
		assert.Equal(t, http.MethodGet, entry.Data["method"])
		assert.Equal(t, "/api/milestones", entry.Data["path"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
	}

	resp = serve(h, http.MethodGet, "/api/milestones/17")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])
	assert.Len(t, hook.AllEntries(), 2)
}

func TestNoRequestLogging(t *testing.T) {
	h := NewHandler(memory.New(), nil)
	resp := serve(h, http.MethodGet, "/api/")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Header().Get(RequestIDHeader))
}

func TestRequestCounter(t *testing.T) {
	h := NewHandler(memory.New(), nil)
	counter := httpRequests.WithLabelValues("get", "200")
	before := testutil.ToFloat64(counter)
	serve(h, http.MethodGet, "/api/releases")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsEndpoint(t *testing.T) {
	h := NewHandler(memory.New(), nil)
	serve(h, http.MethodGet, "/api/")
	resp := serve(h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "diffeo_roadmap_http_requests_total")
}

func TestUnknownPath(t *testing.T) {
	h := NewHandler(memory.New(), nil)
	resp := serve(h, http.MethodGet, "/dashboard")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
