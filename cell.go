package main

import (
	"strconv"

	"github.com/jcorbin/cellforth/internal/runeio"
)

// Forth truth values; TRUE has all bits set.
const (
	True  int32 = -1
	False int32 = 0
)

// Cell is the unit of compiled code: either a literal number, or a reference
// to a dictionary entry. Every cell remembers the token it was parsed from so
// that words like ":" may reclassify it while scanning the instruction stream.
//
// A word cell with a nil Entry is unresolved: its token did not name any word
// at parse time, and will be looked up again when the cell is dispatched.
type Cell struct {
	Token  string
	Number int32
	Entry  *Entry

	isNumber bool
}

// NumberCell returns a literal cell.
func NumberCell(n int32) Cell {
	return Cell{
		Token:    strconv.FormatInt(int64(n), 10),
		Number:   n,
		isNumber: true,
	}
}

// WordCell returns a cell referencing ent; the reference is retained even if
// ent's name is later redefined.
func WordCell(ent *Entry) Cell {
	return Cell{Token: ent.Name(), Entry: ent}
}

// IsNumber returns true for literal cells.
func (c Cell) IsNumber() bool { return c.isNumber }

func (c Cell) String() string {
	if c.isNumber || c.Entry != nil {
		return c.Token
	}
	return c.Token + "?"
}

// literal parses a token as a number: a signed decimal integer, or a rune
// literal like 'A' or <ESC>.
func literal(token string) (int32, bool) {
	if n, err := strconv.ParseInt(token, 10, 32); err == nil {
		return int32(n), true
	}
	if r, err := runeio.UnquoteRune(token); err == nil {
		return int32(r), true
	}
	return 0, false
}

// classify turns a token into a cell against the given dictionary.
func classify(dict *Dictionary, token string) (Cell, error) {
	if n, ok := literal(token); ok {
		c := NumberCell(n)
		c.Token = token
		return c, nil
	}
	if ent := dict.Lookup(token); ent != nil {
		return WordCell(ent), nil
	}
	return Cell{Token: token}, wordError{token, ErrWordNotFound}
}

func boolCell(b bool) int32 {
	if b {
		return True
	}
	return False
}
