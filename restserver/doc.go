// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a Roadmap interface as a REST service.
// The restclient package is a matching client.
//
// The complete REST API is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API; clients should start from the root document.
//
// HTTP Considerations
//
// Responses are JSON.  Clients may use the standard HTTP Accept:
// header to request a more specific type; see "MIME Types" below.
// Request bodies must be JSON as well.
//
// This interface does not support HTTP caching or authentication
// headers.
//
// MIME Types
//
// This interface understands MIME types as follows:
//
//     application/vnd.diffeo.roadmap.v1+json
//
// JSON representation of version 1 of this interface.
//
//     application/vnd.diffeo.roadmap+json
//     application/json
//     text/json
//
// JSON representation of latest version of this interface.  A client
// that accepts anything gets application/json.
//
// URL Scheme
//
// NewRouter places everything under /api.  The following URLs are
// defined relative to that:
//
//     /
//     /milestones
//     /milestones/{id}
//     /releases
//     /releases/{id}
//
// {id} is always a decimal integer.
package restserver
