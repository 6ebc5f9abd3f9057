package eventbus

import (
	"context"
)

const (
	statusSuccess = "success"

	metricEventsPublished = "eventbus_events_published_total"
	metricEventsDelivered = "eventbus_events_delivered_total"
	metricEventsDropped   = "eventbus_events_dropped_total"
	metricSubscribers     = "eventbus_subscribers"

	spanNamePublish   = "eventbus.publish"
	spanAttrEventType = "event_type"
	spanAttrDelivered = "delivered"
	spanAttrDropped   = "dropped"

	logMsgSubscribed       = "eventbus subscribed"
	logMsgUnsubscribed     = "eventbus unsubscribed"
	logMsgPublished        = "eventbus event published"
	logMsgEventDropped     = "eventbus event dropped: subscriber queue full"
	logMsgBusClosed        = "eventbus closed"
	logAttrSubscriptionID  = "subscription_id"
	logAttrSubscriberCount = "subscriber_count"
	logAttrEventType       = "event_type"
	logAttrDelivered       = "delivered"
	logAttrDropped         = "dropped"
)

// recordPublish logs and records the outcome of one fan-out.
func (b *Bus) recordPublish(ctx context.Context, eventType string, delivered, dropped int) {
	labels := map[string]string{spanAttrEventType: eventType}

	b.obs.IncrementCounter(ctx, metricEventsPublished, labels)

	b.obs.AddCounter(ctx, metricEventsDelivered, int64(delivered), labels)
	b.obs.AddCounter(ctx, metricEventsDropped, int64(dropped), labels)

	b.obs.LogDebug(ctx, logMsgPublished,
		logAttrEventType, eventType,
		logAttrDelivered, delivered,
		logAttrDropped, dropped)
}
