// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"time"

	"github.com/diffeo/go-roadmap/restserver"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// RequestIDHeader is the response header carrying the request ID
// that also appears in request logs.
const RequestIDHeader = "X-Request-Id"

// NewHandler builds the complete HTTP handler for the daemon: the
// REST API under restserver.PathPrefix, and Prometheus metrics at
// /metrics.  If reqLogger is non-nil, every request is logged to it
// at debug level.
func NewHandler(rm roadmap.Roadmap, reqLogger *logrus.Logger) http.Handler {
	api := promhttp.InstrumentHandlerDuration(httpDuration,
		promhttp.InstrumentHandlerCounter(httpRequests,
			restserver.NewRouter(rm)))

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.PathPrefix(restserver.PathPrefix).Handler(api)

	n := negroni.New()
	recovery := negroni.NewRecovery()
	recovery.PrintStack = false
	n.Use(recovery)
	if reqLogger != nil {
		n.Use(requestLogger(reqLogger))
	}
	n.UseHandler(r)
	return n
}

// requestLogger creates a negroni middleware that assigns each
// request an ID and logs it once the response is complete.
func requestLogger(logger *logrus.Logger) negroni.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		start := time.Now()
		id := uuid.NewV4().String()
		w.Header().Set(RequestIDHeader, id)

		rw, ok := w.(negroni.ResponseWriter)
		if !ok {
			rw = negroni.NewResponseWriter(w)
		}
		next(rw, req)

		logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     rw.Status(),
			"duration":   time.Since(start),
		}).Debug("HTTP request")
	}
}
