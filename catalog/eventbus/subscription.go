package eventbus

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// Subscription is a cancellable handle on the event stream.
//
// Events are consumed lazily with Next or through the channel returned by C.
// The sequence is forward-only: every event is handed out once.
type Subscription struct {
	id       uuid.UUID
	bus      *Bus
	capacity int

	mu     sync.Mutex
	queue  catalog.Events
	closed bool

	signal chan struct{}
	done   chan struct{}
}

func newSubscription(bus *Bus, capacity int) *Subscription {
	return &Subscription{
		id:       uuid.New(),
		bus:      bus,
		capacity: capacity,
		signal:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// ID returns the unique subscription id.
func (s *Subscription) ID() string {
	return s.id.String()
}

// Next returns the next event, waiting until one is published.
// It returns catalog.ErrSubscriptionClosed once the subscription is closed and ctx.Err() on cancellation.
func (s *Subscription) Next(ctx context.Context) (catalog.Event, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return catalog.Event{}, catalog.ErrSubscriptionClosed
		}

		if len(s.queue) > 0 {
			event := s.queue[0]
			s.queue[0] = catalog.Event{}
			s.queue = s.queue[1:]
			s.mu.Unlock()

			return event, nil
		}
		s.mu.Unlock()

		select {
		case <-s.signal:
		case <-s.done:
			return catalog.Event{}, catalog.ErrSubscriptionClosed
		case <-ctx.Done():
			return catalog.Event{}, ctx.Err()
		}
	}
}

// C returns a channel view of the subscription for transports.
// The channel is closed when the subscription is closed or ctx is done.
// The subscription itself stays registered until Close is called.
func (s *Subscription) C(ctx context.Context) <-chan catalog.Event {
	out := make(chan catalog.Event)

	go func() {
		defer close(out)

		for {
			event, err := s.Next(ctx)
			if err != nil {
				return
			}

			select {
			case out <- event:
			case <-s.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Pending returns the number of queued events not yet consumed.
func (s *Subscription) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queue)
}

// Done returns a channel that is closed when the subscription is closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close unsubscribes from the bus. It is safe to call multiple times.
func (s *Subscription) Close() {
	s.bus.Unsubscribe(context.Background(), s)
}

// enqueue appends the event unless the subscription is closed or its queue is full.
func (s *Subscription) enqueue(event catalog.Event) bool {
	s.mu.Lock()
	if s.closed || (s.capacity > 0 && len(s.queue) >= s.capacity) {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, event)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}

	return true
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	s.queue = nil
	close(s.done)
}
