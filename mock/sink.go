package mock

import (
	"context"

	"github.com/fwojciec/stash"
)

var _ stash.Sink = (*Sink)(nil)

// Sink is a mock implementation of stash.Sink.
type Sink struct {
	EmitFn      func(ctx context.Context, article *stash.Article) (string, error)
	EmitInvoked int
}

func (s *Sink) Emit(ctx context.Context, article *stash.Article) (string, error) {
	s.EmitInvoked++
	return s.EmitFn(ctx, article)
}
