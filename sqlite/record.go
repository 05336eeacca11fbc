package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/stash"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ stash.RecordService = (*RecordService)(nil)

// RecordService implements stash.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord creates a new record, generating its ID and timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, record *stash.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.StashedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, domain, title, sink, destination, body_hash, stashed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.URL, record.Domain, record.Title, record.Sink,
		record.Destination, record.BodyHash, record.StashedAt.Format(time.RFC3339))

	return err
}

// FindRecordByURL retrieves the most recent record for a URL.
func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*stash.Record, error) {
	var record stash.Record
	var stashedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, domain, title, sink, destination, body_hash, stashed_at
		FROM records
		WHERE url = ?
		ORDER BY stashed_at DESC
		LIMIT 1
	`, url).Scan(&record.ID, &record.URL, &record.Domain, &record.Title,
		&record.Sink, &record.Destination, &record.BodyHash, &stashedAt)

	if err == sql.ErrNoRows {
		return nil, stash.Errorf(stash.ENOTFOUND, "no record for %q", url)
	}
	if err != nil {
		return nil, err
	}

	record.StashedAt, err = time.Parse(time.RFC3339, stashedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stashed_at: %w", err)
	}

	return &record, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter stash.RecordFilter) ([]*stash.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, domain, title, sink, destination, body_hash, stashed_at FROM records WHERE 1=1")

	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}

	query.WriteString(" ORDER BY stashed_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*stash.Record
	for rows.Next() {
		var record stash.Record
		var stashedAt string
		if err := rows.Scan(&record.ID, &record.URL, &record.Domain, &record.Title,
			&record.Sink, &record.Destination, &record.BodyHash, &stashedAt); err != nil {
			return nil, err
		}
		record.StashedAt, err = time.Parse(time.RFC3339, stashedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stashed_at: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return stash.Errorf(stash.ENOTFOUND, "record not found")
	}
	return nil
}
