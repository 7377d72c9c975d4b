package main

import (
	"errors"
	"fmt"
)

// Errors returned by Exec; callers should match them with errors.Is, since
// most are wrapped with some context about where they happened.
var (
	ErrEmptyStack                       = errors.New("empty stack")
	ErrWordNotFound                     = errors.New("word not found")
	ErrWordNameNotFound                 = errors.New("word name not found")
	ErrUnterminatedWordDefinition       = errors.New("unterminated word definition")
	ErrUnterminatedComment              = errors.New("unterminated comment")
	ErrInvalidCharacter                 = errors.New("invalid character")
	ErrInvalidJump                      = errors.New("invalid jump")
	ErrExpectedNumber                   = errors.New("expected number")
	ErrSemicolonOutsideOfWordDefinition = errors.New("semicolon outside of word definition")
	ErrDivisionByZero                   = errors.New("division by zero")
	ErrInvalidAddress                   = errors.New("invalid address")
)

var errHalt = errors.New("normal halt")

type wordError struct {
	token string
	err   error
}

func (we wordError) Error() string { return fmt.Sprintf("%v: %q", we.err, we.token) }
func (we wordError) Unwrap() error { return we.err }

type jumpError struct {
	from, offset, length int
}

func (je jumpError) Error() string {
	return fmt.Sprintf("%v: offset %+d from %v to %v outside of [0, %v)",
		ErrInvalidJump, je.offset, je.from, je.from+je.offset, je.length)
}

func (je jumpError) Unwrap() error { return ErrInvalidJump }

type charError int32

func (ce charError) Error() string { return fmt.Sprintf("%v: %v", ErrInvalidCharacter, int32(ce)) }
func (ce charError) Unwrap() error { return ErrInvalidCharacter }

type addrError int32

func (ae addrError) Error() string { return fmt.Sprintf("%v @%v", ErrInvalidAddress, int32(ae)) }
func (ae addrError) Unwrap() error { return ErrInvalidAddress }
