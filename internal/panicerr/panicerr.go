// Package panicerr converts panics and runtime.Goexit calls into errors.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, waiting for it to finish, and returning
// its error; any panic or runtime.Goexit within f is returned as an error
// instead.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			if e := recover(); e != nil {
				errch <- &PanicError{Name: name, Value: e, Stack: debug.Stack()}
			} else {
				errch <- goexitError(name)
			}
		}()
		err := f()
		returned = true
		errch <- err
	}()
	return <-errch
}

// PanicError carries a recovered panic value, and the stack at the time.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *PanicError) Error() string { return fmt.Sprint(pe) }

// Format prints the panic value; the %+v form adds the stack trace.
func (pe *PanicError) Format(f fmt.State, c rune) {
	if pe.Name != "" {
		fmt.Fprintf(f, "%v ", pe.Name)
	}
	fmt.Fprintf(f, "paniced: %v", pe.Value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

type goexitError string

func (name goexitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var ge goexitError
	return errors.As(err, &ge)
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// goroutine panic.
func PanicStack(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
