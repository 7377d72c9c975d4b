package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/cellforth/internal/runeio"
)

// Location names an a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
// Moves on to the next queued stream at the end of each one, returning
// io.EOF only after all streams are exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}

		r, n, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				in.nextLine()
			} else {
				in.Scan.WriteRune(r)
			}
			return r, n, nil
		}
		if err != io.EOF {
			return 0, 0, err
		}
		if in.Scan.Len() > 0 {
			// terminate any final unterminated line before moving on
			in.nextLine()
			in.closeIn()
			return '\n', 0, nil
		}
		in.closeIn()
	}
}

// ReadLine reads runes up to the next line feed, returning the line's
// content (without the line feed) and its location.
// Returns io.EOF only after all streams are exhausted.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return "", in.Scan.Location, err
		}
		if r == '\n' {
			return in.Last.Buffer.String(), in.Last.Location, nil
		}
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

// Close closes the current stream, and any still queued, returning the first
// error.
func (in *Input) Close() error {
	err := in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			err = cl.Close()
		}
		in.rr = nil
	}
	return err
}

func (in *Input) nextIn() bool {
	in.closeIn()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Reset()
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
