package stash

import (
	"context"
	"time"
)

// Record is a history entry for a stashed article: where it came from,
// where it went, and a hash of the body for change detection.
type Record struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Domain      string    `json:"domain"`
	Title       string    `json:"title"`
	Sink        string    `json:"sink"`
	Destination string    `json:"destination"`
	BodyHash    string    `json:"bodyHash"`
	StashedAt   time.Time `json:"stashedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Domain == "" {
		return Errorf(EINVALID, "record domain required")
	}
	return nil
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Domain *string `json:"domain"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService manages stash history records.
type RecordService interface {
	// CreateRecord creates a new record, generating its ID and timestamp.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByURL retrieves the most recent record for a URL.
	// Returns ENOTFOUND if no record exists.
	FindRecordByURL(ctx context.Context, url string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}
