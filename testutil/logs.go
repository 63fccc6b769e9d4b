package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a captured log record.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// LogRecorder is a slog.Handler that keeps every record at or above Level.
type LogRecorder struct {
	Level slog.Level

	mu      *sync.Mutex
	records *[]Record
	attrs   []slog.Attr
}

// NewLogRecorder returns a recorder capturing debug and above, and a logger
// writing to it.
func NewLogRecorder() (*LogRecorder, *slog.Logger) {
	r := &LogRecorder{
		Level:   slog.LevelDebug,
		mu:      &sync.Mutex{},
		records: &[]Record{},
	}
	return r, slog.New(r)
}

// Enabled implements slog.Handler.
func (r *LogRecorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.Level
}

// Handle implements slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]string, len(r.attrs)+rec.NumAttrs())
	for _, a := range r.attrs {
		attrs[a.Key] = a.Value.String()
	}
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, Record{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	return nil
}

// WithAttrs implements slog.Handler.
func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *r
	next.attrs = append(append([]slog.Attr{}, r.attrs...), attrs...)
	return &next
}

// WithGroup implements slog.Handler. Groups are flattened.
func (r *LogRecorder) WithGroup(string) slog.Handler {
	return r
}

// Records returns the captured records.
func (r *LogRecorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(*r.records))
	copy(out, *r.records)
	return out
}

// Messages returns the messages of records at level.
func (r *LogRecorder) Messages(level slog.Level) []string {
	var out []string
	for _, rec := range r.Records() {
		if rec.Level == level {
			out = append(out, rec.Message)
		}
	}
	return out
}
