package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/cellforth/internal/fileinput"
)

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func TestInput_ReadLine(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		namedReader{strings.NewReader("1 2 +\n\n: sq dup * ;\n"), "a.fs"},
		namedReader{strings.NewReader("3 sq"), "b.fs"},
	}}

	type line struct {
		text string
		loc  string
	}
	var lines []line
	for {
		text, loc, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err, "unexpected read error")
		lines = append(lines, line{text, loc.String()})
	}

	assert.Equal(t, []line{
		{"1 2 +", "a.fs:1"},
		{"", "a.fs:2"},
		{": sq dup * ;", "a.fs:3"},
		{"3 sq", "b.fs:1"},
	}, lines)

	_, _, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to persist")
}

func TestInput_ReadRune_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("a")}}
	r, _, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, "<unnamed *strings.Reader>:1", in.Scan.Location.String())
}

type closeCounter struct {
	io.Reader
	closed *int
}

func (cc closeCounter) Close() error {
	*cc.closed++
	return nil
}

func TestInput_Close(t *testing.T) {
	var closed int
	in := fileinput.Input{Queue: []io.Reader{
		closeCounter{strings.NewReader("a\n"), &closed},
		closeCounter{strings.NewReader("b\n"), &closed},
		closeCounter{strings.NewReader("c\n"), &closed},
	}}

	text, _, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", text)
	assert.Equal(t, 0, closed, "expected first stream to still be open")

	assert.NoError(t, in.Close())
	assert.Equal(t, 3, closed, "expected every stream closed once")
	assert.Empty(t, in.Queue)

	_, _, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}
