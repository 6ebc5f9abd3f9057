package memengine

import (
	"context"
	"strconv"
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

const (
	operationList            = "list"
	operationGetByID         = "get_by_id"
	operationGetByTitle      = "get_by_title"
	operationGetByAuthorName = "get_by_author_name"
	operationCreate          = "create"
	operationUpdate          = "update"
	operationDelete          = "delete"

	statusSuccess  = "success"
	statusNotFound = "not_found"

	metricOperationDuration = "bookstore_operation_duration_seconds"
	metricOperations        = "bookstore_operations_total"
	metricBooks             = "bookstore_books_total"

	spanNamePrefix     = "bookstore."
	spanAttrOperation  = "operation"
	spanAttrStatus     = "status"
	spanAttrBookID     = "book_id"
	spanAttrBookCount  = "book_count"
	spanAttrDurationMS = "duration_ms"

	logMsgQueryCompleted    = "bookstore query completed"
	logMsgMutationCompleted = "bookstore mutation completed"
	logMsgAuthorSearch      = "bookstore author search"
	logAttrOperation        = "operation"
	logAttrStatus           = "status"
	logAttrBookID           = "book_id"
	logAttrBookCount        = "book_count"
	logAttrDurationMS       = "duration_ms"
	logAttrIndexedAuthor    = "indexed_author"
)

// finishQuery records duration, call count and span for a read operation and logs at debug level.
func (bs *BookStore) finishQuery(
	ctx context.Context,
	span catalog.SpanContext,
	start time.Time,
	operation string,
	status string,
	resultCount int,
) {

	duration := time.Since(start)
	bs.recordOperation(ctx, operation, status, duration)

	bs.obs.LogDebug(ctx, logMsgQueryCompleted,
		logAttrOperation, operation,
		logAttrStatus, status,
		logAttrBookCount, resultCount,
		logAttrDurationMS, catalog.ToMilliseconds(duration))

	bs.finishSpan(span, status, map[string]string{
		spanAttrBookCount:  strconv.Itoa(resultCount),
		spanAttrDurationMS: strconv.FormatFloat(catalog.ToMilliseconds(duration), 'f', 3, 64),
	})
}

// finishMutation records duration, call count, collection size and span for a mutation and logs at info level.
func (bs *BookStore) finishMutation(
	ctx context.Context,
	span catalog.SpanContext,
	start time.Time,
	operation string,
	status string,
	bookID catalog.BookIDString,
	size int,
) {

	duration := time.Since(start)
	bs.recordOperation(ctx, operation, status, duration)
	bs.obs.RecordValue(ctx, metricBooks, float64(size), map[string]string{spanAttrOperation: operation})

	bs.obs.LogInfo(ctx, logMsgMutationCompleted,
		logAttrOperation, operation,
		logAttrStatus, status,
		logAttrBookID, bookID,
		logAttrBookCount, size,
		logAttrDurationMS, catalog.ToMilliseconds(duration))

	bs.finishSpan(span, status, map[string]string{
		spanAttrBookID:     bookID,
		spanAttrBookCount:  strconv.Itoa(size),
		spanAttrDurationMS: strconv.FormatFloat(catalog.ToMilliseconds(duration), 'f', 3, 64),
	})
}

func (bs *BookStore) recordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	labels := map[string]string{
		spanAttrOperation: operation,
		spanAttrStatus:    status,
	}

	bs.obs.RecordDuration(ctx, metricOperationDuration, duration, labels)
	bs.obs.IncrementCounter(ctx, metricOperations, labels)
}

func (bs *BookStore) finishSpan(span catalog.SpanContext, status string, attrs map[string]string) {
	if span != nil {
		span.SetStatus(status)
	}

	bs.obs.FinishSpan(span, status, attrs)
}
