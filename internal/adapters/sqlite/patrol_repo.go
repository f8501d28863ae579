// Package sqlite implements the persistence secondary port on SQLite.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/patrol/internal/ports/secondary"
)

// PatrolRepository implements secondary.PatrolRepository using SQLite.
type PatrolRepository struct {
	db *sql.DB
}

// NewPatrolRepository creates a new PatrolRepository.
func NewPatrolRepository(db *sql.DB) *PatrolRepository {
	return &PatrolRepository{db: db}
}

// GetCurrentState retrieves all in-flight rows.
func (r *PatrolRepository) GetCurrentState(ctx context.Context) ([]*secondary.CurrentStateRecord, error) {
	query := `SELECT location, start_time, end_time FROM current_patrol_state`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []*secondary.CurrentStateRecord
	for rows.Next() {
		var s secondary.CurrentStateRecord
		if err := rows.Scan(&s.Location, &s.Start, &s.End); err != nil {
			return nil, err
		}
		states = append(states, &s)
	}
	return states, rows.Err()
}

// SaveCurrentState upserts the row for a location. location is the
// primary key, so a second write for the same location overwrites the
// first instead of adding a row.
func (r *PatrolRepository) SaveCurrentState(ctx context.Context, state *secondary.CurrentStateRecord) error {
	query := `INSERT OR REPLACE INTO current_patrol_state (location, start_time, end_time)
		VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, state.Location, state.Start, state.End)
	return err
}

// ClearCurrentState deletes all current-state rows.
func (r *PatrolRepository) ClearCurrentState(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM current_patrol_state`)
	return err
}

// SaveRecord appends one history record and returns the assigned id.
func (r *PatrolRepository) SaveRecord(ctx context.Context, record *secondary.PatrolRecord) (int64, error) {
	query := `INSERT INTO patrol_records (date, shift, location, start_time, end_time)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		record.Date,
		record.Shift,
		record.Location,
		record.Start,
		record.End,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	record.ID = id
	return id, nil
}

// GetHistory retrieves the full ledger, most recently created first.
func (r *PatrolRepository) GetHistory(ctx context.Context) ([]*secondary.PatrolRecord, error) {
	query := `SELECT id, date, shift, location, start_time, end_time
		FROM patrol_records ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*secondary.PatrolRecord
	for rows.Next() {
		var rec secondary.PatrolRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Shift, &rec.Location, &rec.Start, &rec.End); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
