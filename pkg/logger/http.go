package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// HTTPLogger appends one line per request to a plain-text access log.
// It is separate from the structured application log so the access log
// can be shipped or rotated independently.
type HTTPLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewHTTPLogger opens the access log file. The path comes from
// HTTP_LOG_FILE; when unset the logger is a no-op.
func NewHTTPLogger() *HTTPLogger {
	path := os.Getenv("HTTP_LOG_FILE")
	if path == "" {
		return &HTTPLogger{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &HTTPLogger{}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &HTTPLogger{}
	}

	return &HTTPLogger{file: file}
}

// LogRequest writes a single access log line
func (l *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.file, "%s %s %s %s %d %s %q %s\n",
		time.Now().UTC().Format(time.RFC3339), ip, method, uri, status, latency, userAgent, requestID)
}

// Close closes the underlying file if one is open
func (l *HTTPLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
