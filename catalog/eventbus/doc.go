// Package eventbus provides the publish/subscribe channel delivering catalog events to live subscribers.
//
// The Bus keeps an explicit subscriber registry. Every Subscription owns a private ordered
// queue, Publish appends to all queues in registration order and never blocks on slow
// consumers. A subscriber only sees events published after it registered, there is no
// history or replay.
//
// Queues are unbounded by default. WithQueueCapacity bounds each queue, a full queue drops
// the newest event for that subscriber only.
//
// Typical consumption:
//
//	sub := bus.Subscribe(ctx)
//	defer sub.Close()
//
//	for {
//		event, err := sub.Next(ctx)
//		if err != nil {
//			return err // catalog.ErrSubscriptionClosed or ctx.Err()
//		}
//		handle(event)
//	}
package eventbus
