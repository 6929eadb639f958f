package store

import (
	"context"

	"github.com/dakyol/dayboard/internal/pubsub"
)

// Watch returns a live subscription to collection changes. Every successful
// create, update and delete publishes a Change; consumers re-query the full
// collection on each one. The subscription ends when ctx is cancelled or the
// store closes. Cancelling a watch never cancels an in-flight write.
func (s *Store) Watch(ctx context.Context) <-chan pubsub.Event[Change] {
	return s.changes.Subscribe(ctx)
}
