package main

import (
	"fmt"

	"github.com/jcorbin/cellforth/internal/fileinput"
	"github.com/jcorbin/cellforth/internal/flushio"
	"github.com/jcorbin/cellforth/internal/runeio"
)

// Core holds the VM's connections to the outside world: line input, output,
// and trace logging.
type Core struct {
	logging
	fileinput.Input
	out flushio.WriteFlusher
}

// Close flushes output, and closes any input not yet read.
func (core *Core) Close() (err error) {
	if core.out != nil {
		err = core.out.Flush()
	}
	if cerr := core.Input.Close(); err == nil {
		err = cerr
	}
	return err
}

func (core *Core) writeRune(r rune) error {
	_, err := runeio.WriteANSIRune(core.out, r)
	return err
}

func (core *Core) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(core.out, format, args...)
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
