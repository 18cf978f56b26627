// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package roadmap

// ID returns a pointer to a copy of id, for filling in the ID field
// of a Milestone or Release.
func ID(id int64) *int64 {
	return &id
}

// WithID returns a copy of m with its ID set to id.
func (m Milestone) WithID(id int64) Milestone {
	m.ID = ID(id)
	return m
}

// Validate returns ErrNoName if m cannot be stored.
func (m Milestone) Validate() error {
	if m.Name == "" {
		return ErrNoName
	}
	return nil
}

// WithID returns a copy of r with its ID set to id.
func (r Release) WithID(id int64) Release {
	r.ID = ID(id)
	return r
}

// Validate returns ErrNoVersion if r cannot be stored.
func (r Release) Validate() error {
	if r.Version == "" {
		return ErrNoVersion
	}
	return nil
}
