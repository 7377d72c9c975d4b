package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/cellforth/internal/fileinput"
)

// New creates a VM with a dictionary of builtin words and empty stacks.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	vm.compileBuiltins()
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes every line from the VM's input queue, stopping at the first
// error, after bye, or at the end of input. The context is only checked
// between lines.
func (vm *VM) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, loc, err := vm.Input.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if err := vm.Exec(line); errors.Is(err, errHalt) {
			return nil
		} else if err != nil {
			return locationError{loc, err}
		}
	}
}

// WithInput adds a source of lines for Run, read after any prior inputs.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput sets the writer used by output words like . and emit.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies all output to w in addition to the primary output.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithMemLimit bounds memory addresses to be less than limit.
func WithMemLimit(limit uint) VMOption { return withMemLimit(limit) }

// WithExit replaces the os.Exit call made by the bye word.
func WithExit(exit func(code int)) VMOption { return withExit(exit) }

// WithLogf sets the function used for trace and error logging.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

type locationError struct {
	fileinput.Location
	err error
}

func (le locationError) Error() string { return fmt.Sprintf("%v: %v", le.Location, le.err) }
func (le locationError) Unwrap() error { return le.err }
