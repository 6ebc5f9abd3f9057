package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// SpyLogRecord represents a recorded log call. Context is nil for plain Logger calls.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Attr returns the value logged under key, if any.
func (r SpyLogRecord) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if k, ok := r.Args[i].(string); ok && k == key {
			return r.Args[i+1], true
		}
	}

	return nil, false
}

type logRecorder struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

func (r *logRecorder) record(ctx context.Context, level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// Records returns a copy of all records, optionally restricted to one level.
func (r *logRecorder) Records(level ...string) []SpyLogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]SpyLogRecord, 0, len(r.records))
	for _, rec := range r.records {
		if len(level) == 0 || rec.Level == level[0] {
			out = append(out, rec)
		}
	}

	return out
}

// HasLog checks if a record with the given level and message exists.
func (r *logRecorder) HasLog(level, message string) bool {
	for _, rec := range r.Records(level) {
		if rec.Message == message {
			return true
		}
	}

	return false
}

// FindLog returns the first record with the given level and message.
func (r *logRecorder) FindLog(level, message string) (SpyLogRecord, bool) {
	for _, rec := range r.Records(level) {
		if rec.Message == message {
			return rec, true
		}
	}

	return SpyLogRecord{}, false
}

// Count returns the number of recorded calls.
func (r *logRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

// Reset clears all recorded log calls.
func (r *logRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = r.records[:0]
}

// LoggerSpy captures catalog.Logger calls for testing.
type LoggerSpy struct {
	logRecorder
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

func (s *LoggerSpy) Debug(msg string, args ...any) { s.record(nil, LevelDebug, msg, args) }
func (s *LoggerSpy) Info(msg string, args ...any)  { s.record(nil, LevelInfo, msg, args) }
func (s *LoggerSpy) Warn(msg string, args ...any)  { s.record(nil, LevelWarn, msg, args) }
func (s *LoggerSpy) Error(msg string, args ...any) { s.record(nil, LevelError, msg, args) }

// ContextualLoggerSpy captures catalog.ContextualLogger calls for testing.
type ContextualLoggerSpy struct {
	logRecorder
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, LevelDebug, msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, LevelInfo, msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, LevelWarn, msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, LevelError, msg, args)
}

var (
	_ catalog.Logger           = (*LoggerSpy)(nil)
	_ catalog.ContextualLogger = (*ContextualLoggerSpy)(nil)
)
