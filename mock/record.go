package mock

import (
	"context"

	"github.com/fwojciec/stash"
)

var _ stash.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of stash.RecordService.
type RecordService struct {
	CreateRecordFn    func(ctx context.Context, record *stash.Record) error
	FindRecordByURLFn func(ctx context.Context, url string) (*stash.Record, error)
	FindRecordsFn     func(ctx context.Context, filter stash.RecordFilter) ([]*stash.Record, error)
	DeleteRecordFn    func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *stash.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*stash.Record, error) {
	return s.FindRecordByURLFn(ctx, url)
}

func (s *RecordService) FindRecords(ctx context.Context, filter stash.RecordFilter) ([]*stash.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
