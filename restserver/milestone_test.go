// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"net/http"
	"testing"
)

// TestGetAllMilestones: GET /api/milestones returns all milestones
func TestGetAllMilestones(t *testing.T) {
	a := newAPITest(t)
	a.AddMilestone("Milestone 1", a.Today)
	a.AddMilestone("Milestone 2", a.Today.AddDays(1))

	resp := a.Do(http.MethodGet, "/api/milestones", "")
	a.Equal(http.StatusOK, resp.Code)
	a.Equal("application/json", resp.Header().Get("Content-Type"))
	list := a.Array(resp)
	if a.Len(list, 2) {
		a.Equal(1.0, list[0]["id"])
		a.Equal("Milestone 1", list[0]["name"])
		a.Equal(a.Today.String(), list[0]["dueDate"])
		a.Equal(2.0, list[1]["id"])
		a.Equal(a.Today.AddDays(1).String(), list[1]["dueDate"])
	}
}

func TestGetNoMilestones(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodGet, "/api/milestones", "")
	a.Equal(http.StatusOK, resp.Code)
	a.JSONEq("[]", resp.Body.String())
}

// TestGetMilestoneByIDFound: GET /api/milestones/{id} returns
// milestone if found
func TestGetMilestoneByIDFound(t *testing.T) {
	a := newAPITest(t)
	a.AddMilestone("Milestone 1", a.Today)

	resp := a.Do(http.MethodGet, "/api/milestones/1", "")
	a.Equal(http.StatusOK, resp.Code)
	body := a.Object(resp)
	a.Equal(1.0, body["id"])
	a.Equal("Milestone 1", body["name"])
}

// TestGetMilestoneByIDNotFound: GET /api/milestones/{id} returns 404
// if not found
func TestGetMilestoneByIDNotFound(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodGet, "/api/milestones/1", "")
	a.Equal(http.StatusNotFound, resp.Code)
	a.Empty(resp.Body.String())
}

// TestCreateMilestone: POST /api/milestones creates milestone
func TestCreateMilestone(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodPost, "/api/milestones",
		`{"id":null,"name":"Milestone 1","dueDate":"`+a.Today.String()+`"}`)
	a.Equal(http.StatusOK, resp.Code)
	body := a.Object(resp)
	a.Equal(1.0, body["id"])
	a.Equal("Milestone 1", body["name"])
	a.Equal(a.Today.String(), body["dueDate"])

	m, found, err := a.Roadmap.Milestones().Milestone(context.Background(), 1)
	if a.NoError(err) && a.True(found) {
		a.Equal("Milestone 1", m.Name)
		a.Equal(a.Today, m.DueDate)
	}
}

func TestCreateMilestoneNoName(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodPost, "/api/milestones", `{"id":null,"dueDate":"2024-01-15"}`)
	a.Equal(http.StatusBadRequest, resp.Code)
	a.Equal("ErrNoName", a.Object(resp)["error"])
}

func TestCreateMilestoneBadJSON(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodPost, "/api/milestones", `{"name":"x","dueDate":"soon"}`)
	a.Equal(http.StatusBadRequest, resp.Code)

	resp = a.Do(http.MethodPost, "/api/milestones", `{"name":`)
	a.Equal(http.StatusBadRequest, resp.Code)
}

// TestUpdateMilestoneFound: PUT /api/milestones/{id} updates
// milestone if found
func TestUpdateMilestoneFound(t *testing.T) {
	a := newAPITest(t)
	a.AddMilestone("Milestone 1", a.Today)

	resp := a.Do(http.MethodPut, "/api/milestones/1",
		`{"id":null,"name":"Updated","dueDate":"`+a.Today.String()+`"}`)
	a.Equal(http.StatusOK, resp.Code)
	body := a.Object(resp)
	a.Equal(1.0, body["id"])
	a.Equal("Updated", body["name"])
}

// TestUpdateMilestoneNotFound: PUT /api/milestones/{id} returns 404
// if not found
func TestUpdateMilestoneNotFound(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodPut, "/api/milestones/1",
		`{"id":null,"name":"Updated","dueDate":"`+a.Today.String()+`"}`)
	a.Equal(http.StatusNotFound, resp.Code)
	a.Empty(resp.Body.String())
}

// TestDeleteMilestoneFound: DELETE /api/milestones/{id} deletes
// milestone if found
func TestDeleteMilestoneFound(t *testing.T) {
	a := newAPITest(t)
	a.AddMilestone("Milestone 1", a.Today)

	resp := a.Do(http.MethodDelete, "/api/milestones/1", "")
	a.Equal(http.StatusNoContent, resp.Code)
	a.Empty(resp.Body.String())

	resp = a.Do(http.MethodDelete, "/api/milestones/1", "")
	a.Equal(http.StatusNotFound, resp.Code)
}

// TestDeleteMilestoneNotFound: DELETE /api/milestones/{id} returns
// 404 if not found
func TestDeleteMilestoneNotFound(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodDelete, "/api/milestones/1", "")
	a.Equal(http.StatusNotFound, resp.Code)
	a.Empty(resp.Body.String())
}

func TestMilestoneMethodNotAllowed(t *testing.T) {
	a := newAPITest(t)
	resp := a.Do(http.MethodDelete, "/api/milestones", "")
	a.Equal(http.StatusMethodNotAllowed, resp.Code)
	a.Equal("GET, HEAD, POST", resp.Header().Get("Allow"))

	resp = a.Do(http.MethodPost, "/api/milestones/1", `{"name":"x"}`)
	a.Equal(http.StatusMethodNotAllowed, resp.Code)
	a.Equal("GET, HEAD, PUT, DELETE", resp.Header().Get("Allow"))
}
