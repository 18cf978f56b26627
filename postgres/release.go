// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"

	"github.com/diffeo/go-roadmap/roadmap"
)

type releaseService struct {
	roadmap *pgRoadmap
}

var releaseColumns = []string{
	releaseID,
	releaseVersion,
	releaseDate,
}

func scanRelease(row scanner) (r roadmap.Release, err error) {
	var id int64
	err = row.Scan(&id, &r.Version, &r.ReleaseDate)
	if err == nil {
		r.ID = &id
	}
	return
}

func releaseFields(params *queryParams, r roadmap.Release) fieldList {
	fields := fieldList{}
	fields.Add(params, versionColumn, r.Version)
	fields.Add(params, releaseDateColumn, r.ReleaseDate)
	return fields
}

func (s *releaseService) Releases(ctx context.Context) ([]roadmap.Release, error) {
	query := buildSelect(releaseColumns, []string{releaseTable}, nil) +
		" ORDER BY " + releaseID
	result := []roadmap.Release{}
	err := queryAndScan(ctx, s.roadmap.db, query, nil, func(rows *sql.Rows) error {
		r, err := scanRelease(rows)
		if err == nil {
			result = append(result, r)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *releaseService) Release(ctx context.Context, id int64) (r roadmap.Release, found bool, err error) {
	params := queryParams{}
	query := buildSelect(releaseColumns, []string{releaseTable}, []string{
		releaseID + "=" + params.Param(id),
	})
	err = withTx(ctx, s.roadmap.db, true, func(tx *sql.Tx) error {
		var err error
		r, err = scanRelease(tx.QueryRowContext(ctx, query, params...))
		found = err == nil
		if err == sql.ErrNoRows {
			err = nil
		}
		return err
	})
	return
}

func (s *releaseService) CreateRelease(ctx context.Context, in roadmap.Release) (r roadmap.Release, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	params := queryParams{}
	fields := releaseFields(&params, in)
	query := returning(fields.InsertStatement(releaseTable), releaseColumns)
	_, err = queryRowInTx(ctx, s.roadmap.db, query, params, func(row *sql.Row) error {
		var err error
		r, err = scanRelease(row)
		return err
	})
	return
}

func (s *releaseService) UpdateRelease(ctx context.Context, id int64, in roadmap.Release) (r roadmap.Release, found bool, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	params := queryParams{}
	fields := releaseFields(&params, in)
	query := returning(buildUpdate(releaseTable, fields.UpdateChanges(), []string{
		releaseID + "=" + params.Param(id),
	}), releaseColumns)
	found, err = queryRowInTx(ctx, s.roadmap.db, query, params, func(row *sql.Row) error {
		var err error
		r, err = scanRelease(row)
		return err
	})
	return
}

func (s *releaseService) DeleteRelease(ctx context.Context, id int64) (bool, error) {
	params := queryParams{}
	query := "DELETE FROM " + releaseTable + " WHERE " + releaseID + "=" + params.Param(id)
	count, err := execInTx(ctx, s.roadmap.db, query, params)
	return count > 0, err
}
