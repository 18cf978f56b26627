// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

// This file contains generic support code for PostgreSQL
// applications.
//
// There are three main things in here:
//
// (1) Functions to help with database/sql: withTx() to do work in a
//     transaction that can be retried, and scanRows() to loop over the
//     results of a multi-row SELECT
//
// (2) Helpers to build SQL SELECT and UPDATE statements (dealing
//     entirely in strings)
//
// (3) Helpers to manage potentially long query parameter lists:
//     queryParams is a parameter list that can produce $1, $2, ... out,
//     and fieldList is an INSERT/UPDATE key=value list

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// serializationFailure is the SQLSTATE PostgreSQL returns when a
// REPEATABLE READ transaction conflicts with a concurrent one.
const serializationFailure = "40001"

// withTx calls some function with a database/sql transaction object.
// If f panics or returns a non-nil error, rolls the transaction back;
// otherwise commits it before returning.  Returns the error value from
// f, or some other error related to transaction management.
func withTx(ctx context.Context, db *sql.DB, readOnly bool, f func(*sql.Tx) error) (err error) {
	var (
		tx   *sql.Tx
		done bool
	)

	// If we have a failure, roll back; and if that rollback fails
	// and we don't yet have an error, set the error
	defer func() {
		if tx != nil && !done {
			err2 := tx.Rollback()
			if err == nil {
				err = err2
			}
		}
	}()

	// Run in a loop, repeating the work on serialization errors
	for {
		tx, err = db.BeginTx(ctx, nil)
		if err != nil {
			return
		}

		level := "REPEATABLE READ"
		if readOnly {
			level += " READ ONLY"
		}
		_, err = tx.ExecContext(ctx, "SET TRANSACTION ISOLATION LEVEL "+level)
		if err != nil {
			return
		}

		// Call the callback function
		err = f(tx)

		// If that succeeded, commit
		if err == nil {
			err = tx.Commit()
			done = true
		}

		// If we specifically got a serialization error,
		// retry
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == serializationFailure {
			err = tx.Rollback()
			if err == sql.ErrTxDone {
				// Already rolled back; not an error
				err = nil
			} else if err != nil {
				return
			}
			tx = nil
			done = false
			continue
		}

		break
	}

	return
}

// scanRows runs an SQL query and calls a function for each row in the
// result.  The callback function should only call the Scan() method on
// the provided Rows object; this function will take care of advancing
// through the list of rows and closing the iterator as required.
func scanRows(rows *sql.Rows, f func() error) (err error) {
	var done bool
	defer func() {
		if !done {
			err2 := rows.Close()
			if err == nil {
				err = err2
			}
		}
	}()

	for rows.Next() {
		err = f()
		if err != nil {
			return
		}
	}
	done = true
	err = rows.Err()
	return
}

// queryAndScan establishes a read-only transaction, runs query on it
// with params, and calls f for each row in it.  It is the common case
// of combining withTx() and scanRows().
func queryAndScan(ctx context.Context, db *sql.DB, query string, params queryParams, f func(*sql.Rows) error) error {
	return withTx(ctx, db, true, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, params...)
		if err != nil {
			return err
		}
		return scanRows(rows, func() error {
			return f(rows)
		})
	})
}

// queryRowInTx establishes a read-write transaction and runs a
// statement that returns at most one row, passing it to scan.  If the
// statement produces no rows, returns false and a nil error.
func queryRowInTx(ctx context.Context, db *sql.DB, query string, params queryParams, scan func(*sql.Row) error) (found bool, err error) {
	err = withTx(ctx, db, false, func(tx *sql.Tx) error {
		err := scan(tx.QueryRowContext(ctx, query, params...))
		found = err == nil
		if err == sql.ErrNoRows {
			err = nil
		}
		return err
	})
	if err != nil {
		found = false
	}
	return
}

// execInTx establishes a read-write transaction and executes a
// statement, returning the number of rows it affected.
func execInTx(ctx context.Context, db *sql.DB, query string, params queryParams) (count int64, err error) {
	err = withTx(ctx, db, false, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, params...)
		if err != nil {
			return err
		}
		count, err = result.RowsAffected()
		return err
	})
	return
}

// buildSelect constructs a simple SQL SELECT statement by string
// concatenation.  All of the conditions are ANDed together.
func buildSelect(outputs, tables, conditions []string) string {
	query := "SELECT "
	query += strings.Join(outputs, ", ")
	query += " FROM "
	query += strings.Join(tables, ", ")
	if len(conditions) > 0 {
		query += " WHERE "
		query += strings.Join(conditions, " AND ")
	}
	return query
}

// buildUpdate constructs a simple SQL UPDATE statement by string
// concatenation.  All of the conditions are ANDed together.
func buildUpdate(table string, changes, conditions []string) string {
	query := "UPDATE " + table
	if len(changes) > 0 {
		query += " SET " + strings.Join(changes, ", ")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query
}

// returning appends a RETURNING clause to an INSERT or UPDATE
// statement.
func returning(query string, outputs []string) string {
	return query + " RETURNING " + strings.Join(outputs, ", ")
}

// queryParams wraps a list of query parameters.
type queryParams []interface{}

// Param adds a parameter to the query parameter list, returning its
// position as $1, $2, ...
func (qp *queryParams) Param(param interface{}) string {
	*qp = append(*qp, param)
	return fmt.Sprintf("$%v", len(*qp))
}

// fieldPair is a pair of values in a fieldList.
type fieldPair struct {
	Field string
	Value string
}

// AsEquals converts a pair into an (unquoted) "field=value" SQL fragment.
func (fp fieldPair) AsEquals() string {
	return fp.Field + "=" + fp.Value
}

// fieldList is a list of "field=value" pairs as appears in SQL INSERT
// and UPDATE statements.
type fieldList struct {
	Fields []fieldPair
}

// Add adds a name and dynamic value to the field list.
func (f *fieldList) Add(qp *queryParams, field string, value interface{}) {
	f.Fields = append(f.Fields, fieldPair{Field: field, Value: qp.Param(value)})
}

func (f fieldList) mapFields(mf func(fp fieldPair) string) []string {
	result := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		result[i] = mf(field)
	}
	return result
}

// InsertStatement produces a syntactically complete SQL INSERT statement.
func (f fieldList) InsertStatement(table string) string {
	names := f.mapFields(func(fp fieldPair) string { return fp.Field })
	values := f.mapFields(func(fp fieldPair) string { return fp.Value })
	return "INSERT INTO " + table + "(" + strings.Join(names, ", ") + ") VALUES(" + strings.Join(values, ", ") + ")"
}

// UpdateChanges converts a field list into a list of "field=value"
// statements, suitable for the "changes" part of an UPDATE statement.
func (f fieldList) UpdateChanges() []string {
	return f.mapFields(func(fp fieldPair) string { return fp.AsEquals() })
}
