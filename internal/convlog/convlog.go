// Package convlog records conversion outcomes without payment data: each
// entry carries only a hash of the input, the outcome and timing. The record
// file is JSON lines, one entry per conversion.
package convlog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Entry is one recorded conversion attempt.
type Entry struct {
	Timestamp    time.Time `json:"timestamp"`
	MessageType  string    `json:"message_type"`
	InputHash    string    `json:"input_hash"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	ProcessingMS int64     `json:"processing_ms"`
}

// Sink records conversion entries.
type Sink interface {
	Record(entry Entry) error
}

// FileSink appends entries to a JSON-lines file. Safe for concurrent use.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink returns a sink appending to the given path. The file is created
// on first record.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Record appends one entry.
func (s *FileSink) Record(entry Entry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode conversion record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open conversion record file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write conversion record: %w", err)
	}
	return nil
}

// NopSink discards all entries.
type NopSink struct{}

// Record does nothing.
func (NopSink) Record(Entry) error { return nil }
