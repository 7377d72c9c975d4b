package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_literal(t *testing.T) {
	for _, tc := range []struct {
		token string
		value int32
		ok    bool
	}{
		{"0", 0, true},
		{"-12", -12, true},
		{"+12", 12, true},
		{"2147483647", 2147483647, true},
		{"2147483648", 0, false},
		{"'x'", 'x', true},
		{`'\t'`, '\t', true},
		{"<NUL>", 0, true},
		{"<del>", 0x7f, true},
		{"^M", '\r', true},
		{"0x10", 0, false},
		{"dup", 0, false},
		{"''", 0, false},
	} {
		t.Run(tc.token, func(t *testing.T) {
			value, ok := literal(tc.token)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.value, value)
		})
	}
}

func Test_classify(t *testing.T) {
	var dict Dictionary
	ent := NewEntry("w", Native(dup))
	dict.Insert(ent)

	c, err := classify(&dict, "42")
	assert.NoError(t, err)
	assert.Equal(t, NumberCell(42), c)

	c, err = classify(&dict, "w")
	assert.NoError(t, err)
	assert.Equal(t, WordCell(ent), c)
	assert.Equal(t, "w", c.String())

	c, err = classify(&dict, "nope")
	assert.True(t, errors.Is(err, ErrWordNotFound))
	assert.EqualError(t, err, `word not found: "nope"`)
	assert.Equal(t, "nope?", c.String())
}
