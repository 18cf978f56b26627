// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"context"
	"flag"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-roadmap/memory"
	"github.com/diffeo/go-roadmap/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	for _, tc := range []struct {
		Param          string
		Implementation string
		Address        string
		String         string
	}{
		{"memory", "memory", "", "memory"},
		{"postgres:", "postgres", "", "postgres"},
		{"postgres://localhost/roadmap", "postgres", "//localhost/roadmap", "postgres://localhost/roadmap"},
		{"postgresql:host=db", "postgres", "host=db", "postgres:host=db"},
		{"http://localhost:8080/api/", "http", "//localhost:8080/api/", "http://localhost:8080/api/"},
	} {
		var b Backend
		if assert.NoError(t, b.Set(tc.Param), tc.Param) {
			assert.Equal(t, tc.Implementation, b.Implementation, tc.Param)
			assert.Equal(t, tc.Address, b.Address, tc.Param)
			assert.Equal(t, tc.String, b.String(), tc.Param)
		}
	}
}

func TestSetErrors(t *testing.T) {
	b := Backend{Implementation: "memory"}
	assert.Error(t, b.Set(""))
	assert.Equal(t, ErrUnknownBackend{"redis"}, b.Set("redis:localhost"))
	// Failures leave the previous value alone
	assert.Equal(t, "memory", b.String())
}

func TestFlag(t *testing.T) {
	b := Backend{Implementation: "memory"}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Var(&b, "backend", "impl:address of roadmap storage")
	require.NoError(t, flags.Parse([]string{"-backend", "postgres:host=db"}))
	assert.Equal(t, Backend{Implementation: "postgres", Address: "host=db"}, b)
}

func TestText(t *testing.T) {
	var b Backend
	require.NoError(t, b.UnmarshalText([]byte("memory")))
	text, err := b.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "memory", string(text))
}

func TestMemory(t *testing.T) {
	b := Backend{Implementation: "memory"}
	r, err := b.Roadmap()
	require.NoError(t, err)
	list, err := r.Milestones().Milestones(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestHTTP(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()

	var b Backend
	require.NoError(t, b.Set(server.URL+restserver.PathPrefix+"/"))
	_, err := b.Roadmap()
	assert.NoError(t, err)
}

func TestUnknown(t *testing.T) {
	b := Backend{Implementation: "redis"}
	_, err := b.Roadmap()
	assert.Equal(t, ErrUnknownBackend{"redis"}, err)
}
