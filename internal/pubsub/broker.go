// Package pubsub provides a small typed pub/sub broker used to fan out
// store and theme change notifications to live subscribers.
package pubsub

import (
	"context"
	"sync"
	"time"
)

// defaultBufferSize is the channel buffer given to each subscriber.
const defaultBufferSize = 16

// Event wraps a payload with its publication time.
type Event[T any] struct {
	Payload   T
	Timestamp time.Time
}

// Broker delivers published events to every active subscriber. Publishing
// never blocks: events are dropped for subscribers that have fallen behind.
type Broker[T any] struct {
	mu   sync.RWMutex
	subs map[chan Event[T]]struct{}
	done chan struct{}
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs: make(map[chan Event[T]]struct{}),
		done: make(chan struct{}),
	}
}

// Subscribe returns a channel that receives events until ctx is cancelled or
// the broker shuts down. The channel is closed on unsubscribe.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		ch := make(chan Event[T])
		close(ch)
		return ch
	default:
	}

	sub := make(chan Event[T], defaultBufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.subs[sub]; !ok {
			return
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish sends payload to all subscribers, dropping it for any whose
// buffer is full. The read lock is held across the sends: channels are
// only closed under the write lock, so a send here can never hit a
// closed channel, and the non-blocking send keeps the hold short.
func (b *Broker[T]) Publish(payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	select {
	case <-b.done:
		return
	default:
	}

	if len(b.subs) == 0 {
		return
	}

	event := Event[T]{Payload: payload, Timestamp: time.Now()}
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}
}

// Shutdown closes every subscriber channel and stops further delivery.
// Safe to call more than once.
func (b *Broker[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		return
	default:
	}
	close(b.done)

	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
