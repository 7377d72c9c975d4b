package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply
// returned. Otherwise a bufio.Reader provides rune reading around r, and the
// returned Reader passes through r's Name and Close methods, if any.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	cl, _ := r.(io.Closer)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{runeReader{br, cl}, impl.Name()}
	}
	return runeReader{br, cl}
}

type runeReader struct {
	*bufio.Reader
	closer io.Closer
}

// Close closes the underlying reader, if it is an io.Closer.
func (rr runeReader) Close() error {
	if rr.closer == nil {
		return nil
	}
	return rr.closer.Close()
}

type namedRuneReader struct {
	runeReader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }
