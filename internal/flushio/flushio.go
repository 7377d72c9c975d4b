// Package flushio provides buffered output that must be explicitly flushed,
// such as after running each line of input, or before exiting.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w if it is already a WriteFlusher. In-memory
// buffers and io.Discard get a no-op Flush; any other writer is buffered.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return nopFlusher{w}
	}
	if w == io.Discard {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// WriteFlushers tees writes and flushes to all of the given (non-nil)
// WriteFlushers, returning nil if there are none.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var t tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			t = append(t, impl...)
		default:
			t = append(t, wf)
		}
	}
	switch len(t) {
	case 0:
		return nil
	case 1:
		return t[0]
	}
	return t
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n < len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
