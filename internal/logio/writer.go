package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, logging
// one message per line written.
type Writer struct {
	Logf func(string, ...interface{})

	// Prefix is added to the front of every line logged.
	Prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, and then logs any complete lines. Safe for use from
// multiple goroutines. Never fails.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	for {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		lw.logLine(lw.buf.Next(i + 1)[:i])
	}
	return len(p), nil
}

// Sync logs any final partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.buf.Len() > 0 {
		lw.logLine(lw.buf.Next(lw.buf.Len()))
	}
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) logLine(line []byte) {
	lw.Logf("%s%s", lw.Prefix, line)
}
