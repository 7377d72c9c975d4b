package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/cellforth/internal/logio"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	var (
		timeout     time.Duration
		trace       bool
		memLimit    uint
		dump        bool
		interactive bool
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.UintVar(&memLimit, "mem-limit", 0, "enable memory limit")
	flag.BoolVar(&dump, "dump", false, "dump VM state before exiting")
	flag.BoolVar(&interactive, "i", false, "prompt for input after running any source files")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	opts := []VMOption{WithOutput(os.Stdout)}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
		opts = append(opts, WithInput(f))
	}

	prompt := interactive || (flag.NArg() == 0 && isTerminal(os.Stdin))
	if !prompt && flag.NArg() == 0 {
		opts = append(opts, WithInput(os.Stdin))
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if memLimit != 0 {
		opts = append(opts, WithMemLimit(memLimit))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		defer close(done)
		if err := vm.Run(ctx); err != nil {
			return err
		}
		if prompt {
			return runREPL(ctx, vm)
		}
		return nil
	})
	eg.Go(func() error {
		return watchSignals(ctx, done)
	})
	log.ErrorIf(eg.Wait())

	if dump {
		lw := log.Writer("DUMP")
		log.ErrorIf(vmDumper{vm: vm, out: lw}.dump())
		log.ErrorIf(lw.Close())
	}
	log.ErrorIf(vm.Close())
	return log.ExitCode()
}

// watchSignals returns an error after the first interrupt or termination
// signal, which stops the VM after its current line; any further signal
// gets the default behavior.
func watchSignals(ctx context.Context, done <-chan struct{}) error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	select {
	case <-ctx.Done():
		return nil
	case <-done:
		return nil
	case sig := <-sigc:
		return signalError{sig}
	}
}

type signalError struct{ os.Signal }

func (se signalError) Error() string { return fmt.Sprintf("received %v", se.Signal) }

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
