package eventbus

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// Bus fans published events out to all registered subscriptions.
type Bus struct {
	mu            sync.Mutex
	subscriptions []*Subscription
	closed        bool
	queueCapacity int
	obs           catalog.Observability

	published atomic.Int64
	delivered atomic.Int64
	dropped   atomic.Int64
}

// Stats contains bus counters.
type Stats struct {
	Subscribers int
	Published   int64
	Delivered   int64
	Dropped     int64
}

// NewBus creates a Bus with an empty subscriber registry.
func NewBus(options ...Option) (*Bus, error) {
	b := &Bus{}

	for _, option := range options {
		if err := option(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Subscribe registers a new subscription. It receives every event published from now on.
// After Close the returned subscription is already closed.
func (b *Bus) Subscribe(ctx context.Context) *Subscription {
	sub := newSubscription(b, b.queueCapacity)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()

		return sub
	}
	b.subscriptions = append(b.subscriptions, sub)
	count := len(b.subscriptions)
	b.mu.Unlock()

	b.obs.LogInfo(ctx, logMsgSubscribed, logAttrSubscriptionID, sub.ID(), logAttrSubscriberCount, count)
	b.obs.RecordValue(ctx, metricSubscribers, float64(count), nil)

	return sub
}

// Unsubscribe removes the subscription from the registry and closes it.
// Pending events of that subscription are discarded, other subscriptions are not affected.
// Calling it more than once is a no-op.
func (b *Bus) Unsubscribe(ctx context.Context, sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	idx := slices.Index(b.subscriptions, sub)
	if idx >= 0 {
		b.subscriptions = slices.Delete(b.subscriptions, idx, idx+1)
	}
	count := len(b.subscriptions)
	b.mu.Unlock()

	sub.close()

	if idx >= 0 {
		b.obs.LogInfo(ctx, logMsgUnsubscribed, logAttrSubscriptionID, sub.ID(), logAttrSubscriberCount, count)
		b.obs.RecordValue(ctx, metricSubscribers, float64(count), nil)
	}
}

// Publish enqueues the event to every currently registered subscription in registration order
// and returns how many subscriptions accepted it. It never blocks on consumers.
func (b *Bus) Publish(ctx context.Context, event catalog.Event) int {
	ctx, span := b.obs.StartSpan(ctx, spanNamePublish, map[string]string{spanAttrEventType: event.EventType})

	// The registry lock is held for the whole fan-out so concurrent publishes reach
	// all subscriptions in the same order.
	b.mu.Lock()
	delivered, dropped := 0, 0
	for _, sub := range b.subscriptions {
		if sub.enqueue(event) {
			delivered++
			continue
		}

		dropped++
		b.obs.LogWarn(ctx, logMsgEventDropped, logAttrSubscriptionID, sub.ID(), logAttrEventType, event.EventType)
	}
	b.mu.Unlock()

	b.published.Add(1)
	b.delivered.Add(int64(delivered))
	b.dropped.Add(int64(dropped))

	b.recordPublish(ctx, event.EventType, delivered, dropped)

	if span != nil {
		span.AddAttribute(spanAttrDelivered, strconv.Itoa(delivered))
	}
	b.obs.FinishSpan(span, statusSuccess, map[string]string{spanAttrDropped: strconv.Itoa(dropped)})

	return delivered
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	b.mu.Lock()
	count := len(b.subscriptions)
	b.mu.Unlock()

	return Stats{
		Subscribers: count,
		Published:   b.published.Load(),
		Delivered:   b.delivered.Load(),
		Dropped:     b.dropped.Load(),
	}
}

// Close closes all subscriptions. Later publishes reach nobody and later subscriptions start closed.
func (b *Bus) Close(ctx context.Context) {
	b.mu.Lock()
	subs := b.subscriptions
	b.subscriptions = nil
	b.closed = true
	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}

	b.obs.LogInfo(ctx, logMsgBusClosed, logAttrSubscriberCount, len(subs))
	b.obs.RecordValue(ctx, metricSubscribers, 0, nil)
}
