package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Dictionary(t *testing.T) {
	var dict Dictionary
	assert.Nil(t, dict.Lookup("x"))
	assert.Equal(t, 0, dict.Len())

	one := NewEntry("x", Compound{NumberCell(1)})
	two := NewEntry("x", Compound{NumberCell(2)})
	other := NewEntry("a", Native(drop))

	dict.Insert(one)
	dict.Insert(other)
	assert.Same(t, one, dict.Lookup("x"))

	dict.Insert(two)
	assert.Same(t, two, dict.Lookup("x"), "expected last insert to win")
	assert.Equal(t, 2, dict.Len())
	assert.Equal(t, []string{"a", "x"}, dict.Names())

	assert.True(t, one.Equal(two), "expected entries to compare by name")
	assert.False(t, one.Equal(other))
	assert.False(t, one.Equal(nil))
	assert.True(t, (*Entry)(nil).Equal(nil))

	c := WordCell(one)
	assert.Same(t, one, c.Entry, "expected cell to keep its entry after redefinition")
	assert.Equal(t, "1", Statement(c.Entry.Code().(Compound)).String())
}
