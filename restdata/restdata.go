// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Resources are passed across
// the wire as JSON, labeled application/json unless the client asks
// for the more specific application/vnd.diffeo.roadmap.v1+json.
//
// API Usage
//
// HTTP GET the root document at its specified URL.  This will return
// a JSON serialization of the RootData object, which has links to the
// milestone and release collections.  Some of the links are RFC 6570
// URI templates with an {id} parameter.  If the system is rooted at
// /api, the root document looks like
//
//     {
//         "milestones_url": "/api/milestones",
//         "milestone_url": "/api/milestones/{id}",
//         "releases_url": "/api/releases",
//         "release_url": "/api/releases/{id}"
//     }
//
// The collection URLs support GET, returning a JSON array of every
// object in ID order, and POST, which creates a new object from the
// request body and returns it with its "id" filled in.  The
// individual object URLs support GET, PUT to replace the object, and
// DELETE.
//
// Objects are exactly the roadmap package's Milestone and Release
// types.  Dates are ISO 8601 calendar dates, "2024-01-15".  The "id"
// field is null in objects that have not been created, and is
// ignored when sent by the client.
//
// HTTP Considerations
//
// A successful GET, POST, or PUT returns 200 OK with the object as
// its body.  A successful DELETE returns 204 No Content.  If the
// object named by the URL does not exist the server returns 404 Not
// Found with an empty body.  A request body that cannot be decoded,
// or an object that fails validation, returns 400 Bad Request.
//
// Errors
//
// Other than 404, errors are returned as encodings of the
// ErrorResponse type.  This can round-trip all of the roadmap
// package's errors.  If Go server code panics, this is captured and
// returned as an ErrorResponse with error code "panic".
package restdata

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.diffeo.roadmap.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.diffeo.roadmap+json"

// PlainJSONMediaType is the generic JSON MIME type.  This is the
// default response type.
const PlainJSONMediaType = "application/json"

// RootData is returned by the root path.
type RootData struct {
	// MilestonesURL points at the milestone collection.  This
	// endpoint supports HTTP GET, returning a list of
	// roadmap.Milestone, and HTTP POST, to create a new one.
	MilestonesURL string `json:"milestones_url"`

	// MilestoneURL points at a single milestone.  This endpoint
	// supports HTTP GET, PUT, and DELETE.  This is a URI template
	// with a single parameter, "id".
	MilestoneURL string `json:"milestone_url"`

	// ReleasesURL points at the release collection.
	ReleasesURL string `json:"releases_url"`

	// ReleaseURL points at a single release.  This is a URI
	// template with a single parameter, "id".
	ReleaseURL string `json:"release_url"`
}

// ErrorResponse is returned from failing requests.
type ErrorResponse struct {
	// Error contains a fixed code for a well-known error, or
	// "error" for anything else.
	Error string `json:"error"`

	// Message contains the human-readable error text.
	Message string `json:"message,omitempty"`

	// Stack contains a stack trace, only for "panic" errors.
	Stack string `json:"stack,omitempty"`
}
