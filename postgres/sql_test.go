// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	for _, tc := range []struct {
		In, Out string
	}{
		{"", "default_transaction_isolation='repeatable read'"},
		{
			"host=localhost dbname=roadmap",
			"host=localhost dbname=roadmap default_transaction_isolation='repeatable read'",
		},
		{
			"postgres://localhost/roadmap",
			"postgres://localhost/roadmap?default_transaction_isolation=repeatable%20read",
		},
		{
			"//localhost/roadmap?sslmode=disable",
			"postgres://localhost/roadmap?sslmode=disable&default_transaction_isolation=repeatable%20read",
		},
	} {
		assert.Equal(t, tc.Out, normalizeConnectionString(tc.In), tc.In)
	}
}

func TestInsertStatement(t *testing.T) {
	params := queryParams{}
	fields := fieldList{}
	fields.Add(&params, nameColumn, "Alpha")
	fields.Add(&params, dueDateColumn, nil)
	query := returning(fields.InsertStatement(milestoneTable), milestoneColumns)
	assert.Equal(t, "INSERT INTO milestone(name, due_date) VALUES($1, $2) "+
		"RETURNING milestone.id, milestone.name, milestone.due_date", query)
	assert.Equal(t, queryParams{"Alpha", nil}, params)
}

func TestUpdateStatement(t *testing.T) {
	params := queryParams{}
	fields := fieldList{}
	fields.Add(&params, versionColumn, "v2.0")
	fields.Add(&params, releaseDateColumn, nil)
	query := buildUpdate(releaseTable, fields.UpdateChanges(), []string{
		releaseID + "=" + params.Param(int64(7)),
	})
	assert.Equal(t, "UPDATE release SET version=$1, release_date=$2 WHERE release.id=$3", query)
	assert.Len(t, params, 3)
}

func TestSelectStatement(t *testing.T) {
	assert.Equal(t, "SELECT a, b FROM t",
		buildSelect([]string{"a", "b"}, []string{"t"}, nil))
	assert.Equal(t, "SELECT a FROM t, u WHERE x=$1 AND y=$2",
		buildSelect([]string{"a"}, []string{"t", "u"}, []string{"x=$1", "y=$2"}))
}
