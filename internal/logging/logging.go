// Package logging writes one JSON object per line, the format shared by the request
// logger, migrations and tracing setup.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger emits JSON log lines stamped in a fixed location.
// It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

var (
	stdMu sync.RWMutex
	std   = New(os.Stdout, time.UTC)
)

// Default returns the process-wide logger.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	stdMu.Lock()
	std = l
	stdMu.Unlock()
}

// Location is the timezone used for the ts field.
func (l *Logger) Location() *time.Location {
	return l.loc
}

// Log writes data as a single line. It fills ts and, when absent, level
// ("error" if status is "error", "info" otherwise).
func (l *Logger) Log(data map[string]any) {
	data["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(data)
}

// Info logs msg with optional fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.Log(merge(fields, map[string]any{"level": "info", "msg": msg}))
}

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.Log(merge(fields, map[string]any{"level": "warn", "msg": msg}))
}

// Error logs msg with the error text under "error".
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	entry := map[string]any{"level": "error", "msg": msg}
	if err != nil {
		entry["error"] = err.Error()
	}
	l.Log(merge(fields, entry))
}

func merge(fields, base map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+len(base)+1)
	for k, v := range fields {
		out[k] = v
	}
	for k, v := range base {
		out[k] = v
	}
	return out
}
