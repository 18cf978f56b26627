// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a roadmap
// interface based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/diffeo/go-roadmap/memory"
	"github.com/diffeo/go-roadmap/postgres"
	"github.com/diffeo/go-roadmap/restclient"
	"github.com/diffeo/go-roadmap/roadmap"
)

// Backend describes user-visible parameters to store roadmap data.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl:address of roadmap storage")
//         flag.Parse()
//         roadmap, err := backend.Roadmap()
//     }
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// ErrUnknownBackend is returned from Set() and Roadmap() when the
// implementation name is not one of the known implementations.
type ErrUnknownBackend struct {
	Implementation string
}

func (e ErrUnknownBackend) Error() string {
	return "unknown roadmap backend " + e.Implementation
}

// Roadmap creates a new roadmap interface.  This generally should be
// only called once.  If the backend has in-process state, such as a
// database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent roadmaps.
func (b *Backend) Roadmap() (roadmap.Roadmap, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres":
		return postgres.New(b.Address)
	case "http":
		return restclient.New(b.String())
	default:
		return nil, ErrUnknownBackend{b.Implementation}
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that neither Set()
// nor String() attempts to validate the b.Address part of the string
// or attempts to actually make a connection.
func (b *Backend) Set(param string) error {
	if param == "" {
		return errors.New("must specify a backend type")
	}
	parts := strings.SplitN(param, ":", 2)
	impl := parts[0]
	switch impl {
	case "memory", "postgres", "http":
	case "postgresql":
		impl = "postgres"
	default:
		return ErrUnknownBackend{impl}
	}
	b.Implementation = impl
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}

// UnmarshalText sets the backend from its string form, allowing a
// Backend to be read directly from a configuration file.
func (b *Backend) UnmarshalText(text []byte) error {
	return b.Set(string(text))
}

// MarshalText returns the string form of the backend.
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
