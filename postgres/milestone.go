// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"

	"github.com/diffeo/go-roadmap/roadmap"
)

type milestoneService struct {
	roadmap *pgRoadmap
}

var milestoneColumns = []string{
	milestoneID,
	milestoneName,
	milestoneDueDate,
}

// scanner is the common Scan() method of *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMilestone(row scanner) (m roadmap.Milestone, err error) {
	var id int64
	err = row.Scan(&id, &m.Name, &m.DueDate)
	if err == nil {
		m.ID = &id
	}
	return
}

func milestoneFields(params *queryParams, m roadmap.Milestone) fieldList {
	fields := fieldList{}
	fields.Add(params, nameColumn, m.Name)
	fields.Add(params, dueDateColumn, m.DueDate)
	return fields
}

func (s *milestoneService) Milestones(ctx context.Context) ([]roadmap.Milestone, error) {
	query := buildSelect(milestoneColumns, []string{milestoneTable}, nil) +
		" ORDER BY " + milestoneID
	result := []roadmap.Milestone{}
	err := queryAndScan(ctx, s.roadmap.db, query, nil, func(rows *sql.Rows) error {
		m, err := scanMilestone(rows)
		if err == nil {
			result = append(result, m)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *milestoneService) Milestone(ctx context.Context, id int64) (m roadmap.Milestone, found bool, err error) {
	params := queryParams{}
	query := buildSelect(milestoneColumns, []string{milestoneTable}, []string{
		milestoneID + "=" + params.Param(id),
	})
	err = withTx(ctx, s.roadmap.db, true, func(tx *sql.Tx) error {
		var err error
		m, err = scanMilestone(tx.QueryRowContext(ctx, query, params...))
		found = err == nil
		if err == sql.ErrNoRows {
			err = nil
		}
		return err
	})
	return
}

func (s *milestoneService) CreateMilestone(ctx context.Context, in roadmap.Milestone) (m roadmap.Milestone, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	params := queryParams{}
	fields := milestoneFields(&params, in)
	query := returning(fields.InsertStatement(milestoneTable), milestoneColumns)
	_, err = queryRowInTx(ctx, s.roadmap.db, query, params, func(row *sql.Row) error {
		var err error
		m, err = scanMilestone(row)
		return err
	})
	return
}

func (s *milestoneService) UpdateMilestone(ctx context.Context, id int64, in roadmap.Milestone) (m roadmap.Milestone, found bool, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	params := queryParams{}
	fields := milestoneFields(&params, in)
	query := returning(buildUpdate(milestoneTable, fields.UpdateChanges(), []string{
		milestoneID + "=" + params.Param(id),
	}), milestoneColumns)
	found, err = queryRowInTx(ctx, s.roadmap.db, query, params, func(row *sql.Row) error {
		var err error
		m, err = scanMilestone(row)
		return err
	})
	return
}

func (s *milestoneService) DeleteMilestone(ctx context.Context, id int64) (bool, error) {
	params := queryParams{}
	query := "DELETE FROM " + milestoneTable + " WHERE " + milestoneID + "=" + params.Param(id)
	count, err := execInTx(ctx, s.roadmap.db, query, params)
	return count > 0, err
}
