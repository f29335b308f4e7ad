// Package logging provides the session-scoped component loggers used
// by the shelf CLI. One Session is opened at process start and handed
// down; each component logs through its own named Logger into the
// shared session sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// timestampLayout is the per-line timestamp format.
const timestampLayout = "2006-01-02 15:04:05.000"

// Session owns the log sink for one process run. The zero value is
// unusable; construct with Open or Stderr. A Session is safe to share
// between components.
type Session struct {
	id   string
	path string

	mu   sync.Mutex
	out  io.Writer
	file *os.File
}

// Open creates dir if needed and opens a session log file in it, named
// by the session ID. When the directory or file cannot be prepared the
// returned Session falls back to stderr and the error reports why, so
// the caller stays operational either way.
func Open(dir string) (*Session, error) {
	id := newSessionID()

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fallback(id), fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, id+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fallback(id), fmt.Errorf("opening log file: %w", err)
	}

	return &Session{id: id, path: path, out: file, file: file}, nil
}

// Stderr returns a session writing to stderr. Used by tests and as the
// fallback when file logging is unavailable.
func Stderr() *Session {
	return fallback(newSessionID())
}

func fallback(id string) *Session {
	return &Session{id: id, out: os.Stderr}
}

// newSessionID returns a UUIDv7 string, falling back to UUIDv4 if v7
// generation fails.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ID returns the session identifier embedded in the log file name.
func (s *Session) ID() string {
	return s.id
}

// Path returns the log file path, or "" when logging to stderr.
func (s *Session) Path() string {
	return s.path
}

// Close closes the session's log file if one is open.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.out = io.Discard
	return err
}

// Component returns a logger that stamps every line with name.
func (s *Session) Component(name string) *Logger {
	return &Logger{session: s, component: name}
}

// write serializes all component writes into the shared sink.
func (s *Session) write(component, level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "[%s] [%s] [%s] %s\n",
		time.Now().Format(timestampLayout), component, level, message)
}

// Logger emits log lines for a single named component. All levels
// write unconditionally; there is no level filtering.
type Logger struct {
	session   *Session
	component string
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...any) {
	l.session.write(l.component, "DEBUG", fmt.Sprintf(format, v...))
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...any) {
	l.session.write(l.component, "INFO", fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...any) {
	l.session.write(l.component, "WARN", fmt.Sprintf(format, v...))
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...any) {
	l.session.write(l.component, "ERROR", fmt.Sprintf(format, v...))
}
