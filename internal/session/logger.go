// Package session records evaluation runs as an append-only JSONL log.
// The log is an audit trail of what was asked and what came out; nothing
// in the tool reads it back at runtime.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one evaluation run. Answers are recorded as a fingerprint,
// not verbatim, so the log stays stable under question reordering.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	Fingerprint  string    `json:"fingerprint"`
	Category     string    `json:"category"`
	Score        int       `json:"score"`
	Criteria     int       `json:"criteria"`
	Requirements int       `json:"requirements"`
}

// Logger defines the interface for evaluation run logging.
type Logger interface {
	Log(rec Record) error
	Close() error
}

// JSONLogger writes records as newline-delimited JSON (NDJSON).
type JSONLogger struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
	path string
}

// NewJSONLogger creates a logger that appends NDJSON to the given path.
// Parent directories are created automatically.
func NewJSONLogger(path string) (*JSONLogger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating session log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening session log: %w", err)
	}

	return &JSONLogger{
		file: f,
		enc:  json.NewEncoder(f),
		path: path,
	}, nil
}

// Log writes a single record as one JSON line.
func (l *JSONLogger) Log(rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(rec)
}

// Close flushes and closes the underlying file.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Path returns the file path of the session log.
func (l *JSONLogger) Path() string {
	return l.path
}

// NopLogger discards all records. Useful as a default when logging is
// disabled.
type NopLogger struct{}

// Log is a no-op.
func (NopLogger) Log(Record) error { return nil }

// Close is a no-op.
func (NopLogger) Close() error { return nil }

// DefaultLogPath returns a timestamped session log path inside dir.
func DefaultLogPath(dir string) string {
	ts := time.Now().UTC().Format("20060102T150405Z")
	return filepath.Join(dir, fmt.Sprintf("%s-session.jsonl", ts))
}
