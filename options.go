package main

import (
	"io"
	"os"

	"github.com/jcorbin/cellforth/internal/flushio"
)

// VMOption customizes a VM built by New.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(io.Discard),
	withExit(os.Exit),
)

// VMOptions combines any number of options into one.
func VMOptions(opts ...VMOption) VMOption {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	return all
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type memLimitOption uint
type exitOption func(code int)

func withInput(r io.Reader) inputOption       { return inputOption{r} }
func withOutput(w io.Writer) outputOption     { return outputOption{w} }
func withTee(w io.Writer) teeOption           { return teeOption{w} }
func withMemLimit(limit uint) memLimitOption  { return memLimitOption(limit) }
func withExit(exit func(code int)) exitOption { return exitOption(exit) }

func (i inputOption) apply(vm *VM) {
	vm.Input.Queue = append(vm.Input.Queue, i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (lim memLimitOption) apply(vm *VM) {
	vm.mem.Limit = uint(lim)
}

func (exit exitOption) apply(vm *VM) {
	vm.exit = exit
}
